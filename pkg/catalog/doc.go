// Package catalog loads product records and turns them into layout items.
//
// # Sources
//
// Products come from a [Source]:
//
//   - [FileSource]: a JSON or TOML file on disk (see [ReadFile])
//   - [StaticSource]: an in-memory slice, e.g. [Sample]
//   - [MongoSource]: a MongoDB collection
//
// # Mapping
//
// [Items] converts products into [force.Item] values. Stock quantity becomes
// the item weight (and thus the node size), price becomes the magnitude, and
// the category drives grouping.
//
// # Filtering
//
// [Filter] narrows a catalog to one category. The empty string, "all" and
// "Tutte" select every product.
//
// # File Formats
//
// JSON files hold either an array of products or an object with a "products"
// array:
//
//	[{"id": 1, "name": "Laptop", "category": "Elettronica", "price": 1299.99, "quantity": 15}]
//
// TOML files use an array of tables:
//
//	[[products]]
//	id = 1
//	name = "Laptop"
//	category = "Elettronica"
//	price = 1299.99
//	quantity = 15
package catalog
