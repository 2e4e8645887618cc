// Package fanout decides who hears about a new comment or review.
package fanout

// Recipients returns the distinct users to notify when actor interacts with a
// bench. owner is the bench's creator and parentAuthor the author of the
// comment being replied to; either may be nil. The owner always comes first.
// The actor never receives a notification about their own action.
func Recipients(actor string, owner, parentAuthor *string) []string {
	recipients := make([]string, 0, 2)

	ownerID := ""
	if owner != nil && *owner != "" {
		ownerID = *owner
		if ownerID != actor {
			recipients = append(recipients, ownerID)
		}
	}

	if parentAuthor != nil && *parentAuthor != "" {
		author := *parentAuthor
		if author != actor && author != ownerID {
			recipients = append(recipients, author)
		}
	}

	return recipients
}
