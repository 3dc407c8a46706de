package processor

import (
	"strings"

	"ops-dashboard/internal/store"
)

// priorityRules are checked in order; the first rule with a keyword present wins
var priorityRules = []struct {
	priority string
	keywords []string
}{
	{priority: store.InquiryPriorityHigh, keywords: []string{"urgent", "immediately", "asap"}},
	{priority: store.InquiryPriorityMedium, keywords: []string{"soon", "important"}},
}

// DetectPriority guesses an inquiry's priority from its subject and body
func DetectPriority(subject, message string) string {
	text := strings.ToLower(subject + " " + message)
	for _, rule := range priorityRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.priority
			}
		}
	}
	return store.InquiryPriorityLow
}
