package util

import "strings"

// SplitSkills turns "React, Node.js, " into ["React", "Node.js"]: items are
// trimmed, empties dropped, order kept.
func SplitSkills(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
