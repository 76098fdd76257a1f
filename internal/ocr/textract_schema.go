package ocr

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// blockSchema guards the parse of individual response blocks: a unit
// that fails validation is skipped and logged instead of aborting the
// whole document.
var blockSchema = jsonschema.MustCompileString("block.schema.json", `{
  "type": "object",
  "required": ["BlockType"],
  "properties": {
    "BlockType": {"type": "string", "enum": ["PAGE", "LINE", "WORD"]},
    "Text": {"type": "string"},
    "Confidence": {"type": "number", "minimum": 0, "maximum": 100},
    "Geometry": {
      "type": "object",
      "required": ["Polygon"],
      "properties": {
        "Polygon": {
          "type": "array",
          "minItems": 1,
          "items": {
            "type": "object",
            "properties": {
              "X": {"type": "number"},
              "Y": {"type": "number"}
            }
          }
        }
      }
    }
  }
}`)

// decodeBlock validates one raw block against the schema and unmarshals
// it into the typed wire shape.
func decodeBlock(raw json.RawMessage) (wireBlock, error) {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return wireBlock{}, fmt.Errorf("decode block: %w", err)
	}
	if err := blockSchema.Validate(generic); err != nil {
		return wireBlock{}, fmt.Errorf("block failed schema validation: %w", err)
	}
	var blk wireBlock
	if err := json.Unmarshal(raw, &blk); err != nil {
		return wireBlock{}, fmt.Errorf("decode block: %w", err)
	}
	return blk, nil
}
