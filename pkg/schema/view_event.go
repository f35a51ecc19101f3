package schema

const ViewEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "product_view",
	"fields" : [
		{"name": "product_id", "type": "int"},
		{"name": "title", "type": "string"},
		{"name": "category", "type": "string"},
		{"name": "brand", "type": "string"},
		{"name": "price", "type": "double"},
		{"name": "viewed_at", "type": "long"}
	]
}`

// A ViewEventV1 is the wire value of one product view.
// ViewedAt is unix milliseconds.
type ViewEventV1 struct {
	ProductID int     `avro:"product_id"`
	Title     string  `avro:"title"`
	Category  string  `avro:"category"`
	Brand     string  `avro:"brand"`
	Price     float64 `avro:"price"`
	ViewedAt  int64   `avro:"viewed_at"`
}
