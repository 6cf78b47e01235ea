package validators

import "go.mongodb.org/mongo-driver/bson"

// KeyValueValidator guards the KeyValues collection: one document per
// storage key, with the serialized payload in value.
var KeyValueValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"_id",
			"value",
		},
		"additionalProperties": false,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"value": bson.M{
				"bsonType": "string",
			},
		},
	},
}
