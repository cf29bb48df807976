package cmd

import "strings"

// parseMessage splits a status message into its description (with every '#'
// removed) and the words that started with '#'.
func parseMessage(message string) (string, []string) {
	tags := []string{}
	for _, word := range strings.Fields(message) {
		if strings.HasPrefix(word, "#") {
			tags = append(tags, word[1:])
		}
	}
	return strings.ReplaceAll(message, "#", ""), tags
}

func formatTags(tags []string) string {
	return "[" + strings.Join(tags, ", ") + "]"
}
