package notifications

import (
	"errors"
	"fmt"
	"strings"

	"propdesk-backend/internal/domain"
)

var ErrInvalidChunkSize = errors.New("Chunk size must be a positive number")

const reminderSubject = "Stale deals and requirements need attention"

// ChunkRecipients partitions the recipient list into consecutive groups of
// exactly size elements, the final group holding the remainder. An empty
// list yields no groups.
func ChunkRecipients(recipients []string, size int) ([][]string, error) {
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}
	chunks := make([][]string, 0, (len(recipients)+size-1)/size)
	for start := 0; start < len(recipients); start += size {
		end := start + size
		if end > len(recipients) {
			end = len(recipients)
		}
		chunks = append(chunks, recipients[start:end])
	}
	return chunks, nil
}

// BuildDigest renders the reminder body: one line per stale requirement,
// then one line per stale deal, 1-indexed, in input order. Plain text.
func BuildDigest(deals []domain.Deal, requirements []domain.Requirement) string {
	var b strings.Builder
	for i, req := range requirements {
		fmt.Fprintf(&b, "Requirement %d: %s\n", i+1, req.Demand)
	}
	for i, deal := range deals {
		fmt.Fprintf(&b, "Deal %d: %s\n", i+1, deal.DealID)
	}
	return b.String()
}

// BuildReminderMessages assembles one message per recipient chunk. Returns
// no messages when there is nothing stale to report.
func BuildReminderMessages(from string, recipients []string, chunkSize int, deals []domain.Deal, requirements []domain.Requirement) ([]Message, error) {
	if len(deals) == 0 && len(requirements) == 0 {
		return nil, nil
	}
	chunks, err := ChunkRecipients(recipients, chunkSize)
	if err != nil {
		return nil, err
	}
	digest := BuildDigest(deals, requirements)
	messages := make([]Message, 0, len(chunks))
	for _, chunk := range chunks {
		messages = append(messages, Message{
			From:    from,
			To:      chunk,
			Subject: reminderSubject,
			Text:    digest,
		})
	}
	return messages, nil
}
