package notifier

import (
	"fmt"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
	"github.com/pfrederiksen/dmv-dates/internal/availability"
)

// tweetLimit is Twitter's maximum status length
const tweetLimit = 280

// TwitterCredentials are the OAuth1 keys for posting
type TwitterCredentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

// TwitterNotifier posts availability to Twitter
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a new Twitter notifier
func NewTwitterNotifier(creds TwitterCredentials) (*TwitterNotifier, error) {
	if creds.APIKey == "" || creds.APISecret == "" || creds.AccessToken == "" || creds.AccessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials")
	}

	config := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)
	httpClient := config.Client(oauth1.NoContext, token)

	return &TwitterNotifier{client: twitter.NewClient(httpClient)}, nil
}

// Notify posts a single tweet summarizing the soonest offices
func (n *TwitterNotifier) Notify(results []availability.Result) error {
	if _, _, err := n.client.Statuses.Update(formatTweet(results), nil); err != nil {
		return fmt.Errorf("failed to post tweet: %w", err)
	}
	return nil
}

// formatTweet formats results as a tweet
func formatTweet(results []availability.Result) string {
	tweet := FormatMessage(results) + "\n\n#CaliforniaDMV #DriveTest"

	if len(tweet) > tweetLimit {
		tweet = tweet[:tweetLimit-3] + "..."
	}
	return tweet
}
