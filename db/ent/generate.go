// Command generate runs Ent codegen for the schemas in db/ent/schema,
// emitting the client into gen/ent. Run from the repository root:
//
//	go run ./db/ent
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/danielokoye/invoicescan/gen/ent",
			Schema:  "github.com/danielokoye/invoicescan/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
