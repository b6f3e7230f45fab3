package recommend

import (
	"encoding/json"
	"strings"
)

// ParseIdArray pulls the first JSON string array out of free-form oracle
// output. The oracle is instructed to reply with a bare array, but models wrap
// answers in prose often enough that the span between the first '[' and the
// last ']' is extracted and parsed instead of the whole response.
func ParseIdArray(response string) ([]string, bool) {
	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start < 0 || end <= start {
		return nil, false
	}

	var ids []string
	if err := json.Unmarshal([]byte(response[start:end+1]), &ids); err != nil {
		return nil, false
	}
	return ids, true
}
