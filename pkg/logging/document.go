package logging

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// document flattens an entry into the shape shipped to the log sinks.
func document(entry *logrus.Entry, timestampKey string, timestamp interface{}) ([]byte, error) {
	doc := map[string]interface{}{
		timestampKey: timestamp,
		"level":      entry.Level.String(),
		"message":    entry.Message,
		"fields":     fields(entry.Data),
	}

	if err, ok := entry.Data[logrus.ErrorKey].(error); ok {
		doc["error"] = map[string]interface{}{
			"message": err.Error(),
			"type":    fmt.Sprintf("%T", err),
		}
	}

	return json.Marshal(doc)
}

// fields replaces error values, which marshal to {}, with their message.
func fields(data logrus.Fields) logrus.Fields {
	out := make(logrus.Fields, len(data))
	for k, v := range data {
		if err, ok := v.(error); ok {
			out[k] = err.Error()
			continue
		}
		out[k] = v
	}

	return out
}
