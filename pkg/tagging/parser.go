package tagging

import (
	"encoding/json"
	"strings"
)

type oracleReply struct {
	Tags      []string `json:"tags"`
	Traits    []string `json:"traits"`
	AgeRating string   `json:"ageRating"`
}

// parseReply extracts the first JSON object span from free-form oracle output
// and decodes it. Unknown fields are ignored; missing fields come back empty
// and are handled by the fallback layer.
func parseReply(response string) (oracleReply, bool) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return oracleReply{}, false
	}

	var reply oracleReply
	if err := json.Unmarshal([]byte(response[start:end+1]), &reply); err != nil {
		return oracleReply{}, false
	}
	return reply, true
}
