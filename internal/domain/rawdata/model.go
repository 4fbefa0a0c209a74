package rawdata

// Document is one decoded JSON object exactly as the Sleeper API returned it.
// Numbers decode as json.Number so large identifiers keep their precision.
type Document = map[string]any
