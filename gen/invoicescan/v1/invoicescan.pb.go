// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: invoicescan/v1/invoicescan.proto

package invoicescanv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SubmitDocumentRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	FileName string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Content  []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	// Optional; defaults to "textract". The provider is fixed at
	// submission and never changed afterwards.
	OcrProvider   string `protobuf:"bytes,3,opt,name=ocr_provider,json=ocrProvider,proto3" json:"ocr_provider,omitempty"`
	LlmProvider   string `protobuf:"bytes,4,opt,name=llm_provider,json=llmProvider,proto3" json:"llm_provider,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentRequest) Reset() {
	*x = SubmitDocumentRequest{}
	mi := &file_invoicescan_v1_invoicescan_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentRequest) ProtoMessage() {}

func (x *SubmitDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicescan_v1_invoicescan_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentRequest.ProtoReflect.Descriptor instead.
func (*SubmitDocumentRequest) Descriptor() ([]byte, []int) {
	return file_invoicescan_v1_invoicescan_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitDocumentRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *SubmitDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *SubmitDocumentRequest) GetOcrProvider() string {
	if x != nil {
		return x.OcrProvider
	}
	return ""
}

func (x *SubmitDocumentRequest) GetLlmProvider() string {
	if x != nil {
		return x.LlmProvider
	}
	return ""
}

type SubmitDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentResponse) Reset() {
	*x = SubmitDocumentResponse{}
	mi := &file_invoicescan_v1_invoicescan_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentResponse) ProtoMessage() {}

func (x *SubmitDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicescan_v1_invoicescan_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentResponse.ProtoReflect.Descriptor instead.
func (*SubmitDocumentResponse) Descriptor() ([]byte, []int) {
	return file_invoicescan_v1_invoicescan_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitDocumentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *SubmitDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetJobStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusRequest) Reset() {
	*x = GetJobStatusRequest{}
	mi := &file_invoicescan_v1_invoicescan_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusRequest) ProtoMessage() {}

func (x *GetJobStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicescan_v1_invoicescan_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusRequest.ProtoReflect.Descriptor instead.
func (*GetJobStatusRequest) Descriptor() ([]byte, []int) {
	return file_invoicescan_v1_invoicescan_proto_rawDescGZIP(), []int{2}
}

func (x *GetJobStatusRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Progress      int32                  `protobuf:"varint,3,opt,name=progress,proto3" json:"progress,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,4,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	FileName      string                 `protobuf:"bytes,5,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	OcrProvider   string                 `protobuf:"bytes,6,opt,name=ocr_provider,json=ocrProvider,proto3" json:"ocr_provider,omitempty"`
	LlmProvider   string                 `protobuf:"bytes,7,opt,name=llm_provider,json=llmProvider,proto3" json:"llm_provider,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusResponse) Reset() {
	*x = GetJobStatusResponse{}
	mi := &file_invoicescan_v1_invoicescan_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusResponse) ProtoMessage() {}

func (x *GetJobStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicescan_v1_invoicescan_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusResponse.ProtoReflect.Descriptor instead.
func (*GetJobStatusResponse) Descriptor() ([]byte, []int) {
	return file_invoicescan_v1_invoicescan_proto_rawDescGZIP(), []int{3}
}

func (x *GetJobStatusResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *GetJobStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetJobStatusResponse) GetProgress() int32 {
	if x != nil {
		return x.Progress
	}
	return 0
}

func (x *GetJobStatusResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *GetJobStatusResponse) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *GetJobStatusResponse) GetOcrProvider() string {
	if x != nil {
		return x.OcrProvider
	}
	return ""
}

func (x *GetJobStatusResponse) GetLlmProvider() string {
	if x != nil {
		return x.LlmProvider
	}
	return ""
}

func (x *GetJobStatusResponse) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *GetJobStatusResponse) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListCoordinatesRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	JobId string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	// 0 means all pages.
	PageNumber    int32 `protobuf:"varint,2,opt,name=page_number,json=pageNumber,proto3" json:"page_number,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCoordinatesRequest) Reset() {
	*x = ListCoordinatesRequest{}
	mi := &file_invoicescan_v1_invoicescan_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCoordinatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCoordinatesRequest) ProtoMessage() {}

func (x *ListCoordinatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicescan_v1_invoicescan_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCoordinatesRequest.ProtoReflect.Descriptor instead.
func (*ListCoordinatesRequest) Descriptor() ([]byte, []int) {
	return file_invoicescan_v1_invoicescan_proto_rawDescGZIP(), []int{4}
}

func (x *ListCoordinatesRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ListCoordinatesRequest) GetPageNumber() int32 {
	if x != nil {
		return x.PageNumber
	}
	return 0
}

type BoundingBox struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PageNumber    int32                  `protobuf:"varint,1,opt,name=page_number,json=pageNumber,proto3" json:"page_number,omitempty"`
	Left          int32                  `protobuf:"varint,2,opt,name=left,proto3" json:"left,omitempty"`
	Top           int32                  `protobuf:"varint,3,opt,name=top,proto3" json:"top,omitempty"`
	Width         int32                  `protobuf:"varint,4,opt,name=width,proto3" json:"width,omitempty"`
	Height        int32                  `protobuf:"varint,5,opt,name=height,proto3" json:"height,omitempty"`
	Text          string                 `protobuf:"bytes,6,opt,name=text,proto3" json:"text,omitempty"`
	Confidence    float32                `protobuf:"fixed32,7,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BoundingBox) Reset() {
	*x = BoundingBox{}
	mi := &file_invoicescan_v1_invoicescan_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BoundingBox) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BoundingBox) ProtoMessage() {}

func (x *BoundingBox) ProtoReflect() protoreflect.Message {
	mi := &file_invoicescan_v1_invoicescan_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BoundingBox.ProtoReflect.Descriptor instead.
func (*BoundingBox) Descriptor() ([]byte, []int) {
	return file_invoicescan_v1_invoicescan_proto_rawDescGZIP(), []int{5}
}

func (x *BoundingBox) GetPageNumber() int32 {
	if x != nil {
		return x.PageNumber
	}
	return 0
}

func (x *BoundingBox) GetLeft() int32 {
	if x != nil {
		return x.Left
	}
	return 0
}

func (x *BoundingBox) GetTop() int32 {
	if x != nil {
		return x.Top
	}
	return 0
}

func (x *BoundingBox) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *BoundingBox) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

func (x *BoundingBox) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *BoundingBox) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type ListCoordinatesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Boxes         []*BoundingBox         `protobuf:"bytes,1,rep,name=boxes,proto3" json:"boxes,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCoordinatesResponse) Reset() {
	*x = ListCoordinatesResponse{}
	mi := &file_invoicescan_v1_invoicescan_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCoordinatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCoordinatesResponse) ProtoMessage() {}

func (x *ListCoordinatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicescan_v1_invoicescan_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCoordinatesResponse.ProtoReflect.Descriptor instead.
func (*ListCoordinatesResponse) Descriptor() ([]byte, []int) {
	return file_invoicescan_v1_invoicescan_proto_rawDescGZIP(), []int{6}
}

func (x *ListCoordinatesResponse) GetBoxes() []*BoundingBox {
	if x != nil {
		return x.Boxes
	}
	return nil
}

func (x *ListCoordinatesResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

var File_invoicescan_v1_invoicescan_proto protoreflect.FileDescriptor

const file_invoicescan_v1_invoicescan_proto_rawDesc = "" +
	"\n" +
	" invoicescan/v1/invoicescan.proto\x12\x0einvoicescan.v1\"\x94\x01\n" +
	"\x15SubmitDocumentRequest\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\x12!\n" +
	"\focr_provider\x18\x03 \x01(\tR\vocrProvider\x12!\n" +
	"\fllm_provider\x18\x04 \x01(\tR\vllmProvider\"G\n" +
	"\x16SubmitDocumentResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\",\n" +
	"\x13GetJobStatusRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\xa7\x02\n" +
	"\x14GetJobStatusResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1a\n" +
	"\bprogress\x18\x03 \x01(\x05R\bprogress\x12#\n" +
	"\rerror_message\x18\x04 \x01(\tR\ferrorMessage\x12\x1b\n" +
	"\tfile_name\x18\x05 \x01(\tR\bfileName\x12!\n" +
	"\focr_provider\x18\x06 \x01(\tR\vocrProvider\x12!\n" +
	"\fllm_provider\x18\a \x01(\tR\vllmProvider\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"P\n" +
	"\x16ListCoordinatesRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1f\n" +
	"\vpage_number\x18\x02 \x01(\x05R\n" +
	"pageNumber\"\xb6\x01\n" +
	"\vBoundingBox\x12\x1f\n" +
	"\vpage_number\x18\x01 \x01(\x05R\n" +
	"pageNumber\x12\x12\n" +
	"\x04left\x18\x02 \x01(\x05R\x04left\x12\x10\n" +
	"\x03top\x18\x03 \x01(\x05R\x03top\x12\x14\n" +
	"\x05width\x18\x04 \x01(\x05R\x05width\x12\x16\n" +
	"\x06height\x18\x05 \x01(\x05R\x06height\x12\x12\n" +
	"\x04text\x18\x06 \x01(\tR\x04text\x12\x1e\n" +
	"\n" +
	"confidence\x18\a \x01(\x02R\n" +
	"confidence\"b\n" +
	"\x17ListCoordinatesResponse\x121\n" +
	"\x05boxes\x18\x01 \x03(\v2\x1b.invoicescan.v1.BoundingBoxR\x05boxes\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total2\xb1\x02\n" +
	"\x0fDocumentService\x12_\n" +
	"\x0eSubmitDocument\x12%.invoicescan.v1.SubmitDocumentRequest\x1a&.invoicescan.v1.SubmitDocumentResponse\x12Y\n" +
	"\fGetJobStatus\x12#.invoicescan.v1.GetJobStatusRequest\x1a$.invoicescan.v1.GetJobStatusResponse\x12b\n" +
	"\x0fListCoordinates\x12&.invoicescan.v1.ListCoordinatesRequest\x1a'.invoicescan.v1.ListCoordinatesResponseBEZCgithub.com/danielokoye/invoicescan/gen/invoicescan/v1;invoicescanv1b\x06proto3"

var (
	file_invoicescan_v1_invoicescan_proto_rawDescOnce sync.Once
	file_invoicescan_v1_invoicescan_proto_rawDescData []byte
)

func file_invoicescan_v1_invoicescan_proto_rawDescGZIP() []byte {
	file_invoicescan_v1_invoicescan_proto_rawDescOnce.Do(func() {
		file_invoicescan_v1_invoicescan_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_invoicescan_v1_invoicescan_proto_rawDesc), len(file_invoicescan_v1_invoicescan_proto_rawDesc)))
	})
	return file_invoicescan_v1_invoicescan_proto_rawDescData
}

var file_invoicescan_v1_invoicescan_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_invoicescan_v1_invoicescan_proto_goTypes = []any{
	(*SubmitDocumentRequest)(nil),   // 0: invoicescan.v1.SubmitDocumentRequest
	(*SubmitDocumentResponse)(nil),  // 1: invoicescan.v1.SubmitDocumentResponse
	(*GetJobStatusRequest)(nil),     // 2: invoicescan.v1.GetJobStatusRequest
	(*GetJobStatusResponse)(nil),    // 3: invoicescan.v1.GetJobStatusResponse
	(*ListCoordinatesRequest)(nil),  // 4: invoicescan.v1.ListCoordinatesRequest
	(*BoundingBox)(nil),             // 5: invoicescan.v1.BoundingBox
	(*ListCoordinatesResponse)(nil), // 6: invoicescan.v1.ListCoordinatesResponse
}
var file_invoicescan_v1_invoicescan_proto_depIdxs = []int32{
	5, // 0: invoicescan.v1.ListCoordinatesResponse.boxes:type_name -> invoicescan.v1.BoundingBox
	0, // 1: invoicescan.v1.DocumentService.SubmitDocument:input_type -> invoicescan.v1.SubmitDocumentRequest
	2, // 2: invoicescan.v1.DocumentService.GetJobStatus:input_type -> invoicescan.v1.GetJobStatusRequest
	4, // 3: invoicescan.v1.DocumentService.ListCoordinates:input_type -> invoicescan.v1.ListCoordinatesRequest
	1, // 4: invoicescan.v1.DocumentService.SubmitDocument:output_type -> invoicescan.v1.SubmitDocumentResponse
	3, // 5: invoicescan.v1.DocumentService.GetJobStatus:output_type -> invoicescan.v1.GetJobStatusResponse
	6, // 6: invoicescan.v1.DocumentService.ListCoordinates:output_type -> invoicescan.v1.ListCoordinatesResponse
	4, // [4:7] is the sub-list for method output_type
	1, // [1:4] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_invoicescan_v1_invoicescan_proto_init() }
func file_invoicescan_v1_invoicescan_proto_init() {
	if File_invoicescan_v1_invoicescan_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_invoicescan_v1_invoicescan_proto_rawDesc), len(file_invoicescan_v1_invoicescan_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_invoicescan_v1_invoicescan_proto_goTypes,
		DependencyIndexes: file_invoicescan_v1_invoicescan_proto_depIdxs,
		MessageInfos:      file_invoicescan_v1_invoicescan_proto_msgTypes,
	}.Build()
	File_invoicescan_v1_invoicescan_proto = out.File
	file_invoicescan_v1_invoicescan_proto_goTypes = nil
	file_invoicescan_v1_invoicescan_proto_depIdxs = nil
}
