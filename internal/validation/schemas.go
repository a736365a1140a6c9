package validation

// Shared JSON-schema fragments. Every body schema embeds the definitions it needs.
const definitions = `"definitions": {
	"timeOfDay": {
		"type": "object",
		"required": ["hour", "minute"],
		"properties": {
			"hour": {"type": "integer", "minimum": 0, "maximum": 23},
			"minute": {"type": "integer", "minimum": 0, "maximum": 59}
		}
	},
	"dateTime": {"type": "string", "format": "date-time"},
	"temp": {"type": "number"},
	"mode": {"type": "string", "enum": ["auto", "cool", "dry", "fan", "heat"]},
	"ac": {
		"type": "object",
		"required": ["mode", "temp"],
		"properties": {
			"mode": {"$ref": "#/definitions/mode"},
			"temp": {"$ref": "#/definitions/temp"}
		}
	},
	"defaultTrigger": {
		"type": "object",
		"required": ["id", "time", "temp", "ac"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"time": {"$ref": "#/definitions/timeOfDay"},
			"temp": {"$ref": "#/definitions/temp"},
			"ac": {"$ref": "#/definitions/ac"}
		}
	}
}`

func objectSchema(required, properties string) string {
	return `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": [` + required + `],
	"properties": {` + properties + `},
	` + definitions + `
}`
}

var (
	createDefaultTriggerSchema = objectSchema(`"time", "temp", "ac"`, `
		"time": {"$ref": "#/definitions/timeOfDay"},
		"temp": {"$ref": "#/definitions/temp"},
		"ac": {"$ref": "#/definitions/ac"}`)

	createDateTriggerSchema = objectSchema(`"dateTime", "temp", "ac"`, `
		"dateTime": {"$ref": "#/definitions/dateTime"},
		"temp": {"$ref": "#/definitions/temp"},
		"ac": {"$ref": "#/definitions/ac"}`)

	updateTimeSchema = objectSchema(`"time"`, `
		"time": {"$ref": "#/definitions/timeOfDay"}`)

	updateDateTimeSchema = objectSchema(`"dateTime"`, `
		"dateTime": {"$ref": "#/definitions/dateTime"}`)

	updateTempSchema = objectSchema(`"temp"`, `
		"temp": {"$ref": "#/definitions/temp"}`)

	updateModeSchema = objectSchema(`"mode"`, `
		"mode": {"$ref": "#/definitions/mode"}`)

	snapshotSchema = objectSchema(`"triggers"`, `
		"triggers": {"type": "array", "items": {"$ref": "#/definitions/defaultTrigger"}}`)
)
