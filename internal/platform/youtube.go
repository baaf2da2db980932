package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/courtside-live/courtside/internal/model"
)

// youtubeClient talks to the YouTube Data API v3 live broadcasts resource.
type youtubeClient struct {
	svc *youtube.Service
}

// compile-time check that youtubeClient implements Client
var _ Client = (*youtubeClient)(nil)

// NewYouTubeClient builds an authenticated client from an installed-app
// client secrets file and a previously provisioned OAuth token file.
// Token acquisition itself is outside this service; the refresh token keeps
// the credential alive.
func NewYouTubeClient(ctx context.Context, clientSecretsPath, tokenPath string) (Client, error) {
	secrets, err := os.ReadFile(clientSecretsPath)
	if err != nil {
		return nil, fmt.Errorf("read client secrets: %w", err)
	}
	oauthConfig, err := google.ConfigFromJSON(secrets, youtube.YoutubeForceSslScope)
	if err != nil {
		return nil, fmt.Errorf("parse client secrets: %w", err)
	}

	tokenBytes, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("read oauth token: %w", err)
	}
	token := &oauth2.Token{}
	if err := json.Unmarshal(tokenBytes, token); err != nil {
		return nil, fmt.Errorf("parse oauth token: %w", err)
	}

	svc, err := youtube.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}

	log.Info().Msg("youtube client initialized")
	return &youtubeClient{svc: svc}, nil
}

func (c *youtubeClient) CreateBroadcast(ctx context.Context, title, description string, start, end time.Time) (string, error) {
	broadcast := &youtube.LiveBroadcast{
		Snippet: &youtube.LiveBroadcastSnippet{
			Title:              title,
			Description:        description,
			ScheduledStartTime: start.UTC().Format(time.RFC3339),
			ScheduledEndTime:   end.UTC().Format(time.RFC3339),
		},
		Status: &youtube.LiveBroadcastStatus{
			PrivacyStatus:           "public",
			SelfDeclaredMadeForKids: false,
		},
		ContentDetails: &youtube.LiveBroadcastContentDetails{
			EnableAutoStart: false,
			EnableAutoStop:  true,
		},
	}

	resp, err := c.svc.LiveBroadcasts.
		Insert([]string{"snippet", "status", "contentDetails"}, broadcast).
		Context(ctx).
		Do()
	if err != nil {
		return "", wrapUpstream("insert broadcast", err)
	}
	return resp.Id, nil
}

func (c *youtubeClient) ListBroadcasts(ctx context.Context, filter BroadcastFilter, limit int64, orderBy string) ([]model.Broadcast, error) {
	resp, err := c.svc.LiveBroadcasts.
		List([]string{"id", "snippet", "status"}).
		BroadcastStatus(string(filter)).
		MaxResults(limit).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapUpstream("list broadcasts", err)
	}

	out := make([]model.Broadcast, 0, len(resp.Items))
	for _, item := range resp.Items {
		out = append(out, fromAPI(item))
	}
	// the live broadcasts resource has no server-side ordering; sort here
	if orderBy == OrderByStartTime {
		sort.Slice(out, func(i, j int) bool {
			return out[i].ScheduledStart.Before(out[j].ScheduledStart)
		})
	}
	return out, nil
}

func (c *youtubeClient) UpdateBroadcast(ctx context.Context, id, title string, start, end time.Time) (model.Broadcast, error) {
	broadcast := &youtube.LiveBroadcast{
		Id: id,
		Snippet: &youtube.LiveBroadcastSnippet{
			Title:              title,
			ScheduledStartTime: start.UTC().Format(time.RFC3339),
			ScheduledEndTime:   end.UTC().Format(time.RFC3339),
		},
	}

	resp, err := c.svc.LiveBroadcasts.
		Update([]string{"snippet"}, broadcast).
		Context(ctx).
		Do()
	if err != nil {
		return model.Broadcast{}, wrapUpstream("update broadcast", err)
	}
	return fromAPI(resp), nil
}

func (c *youtubeClient) DeleteBroadcast(ctx context.Context, id string) error {
	if err := c.svc.LiveBroadcasts.Delete(id).Context(ctx).Do(); err != nil {
		return wrapUpstream("delete broadcast", err)
	}
	return nil
}

// wrapUpstream tags transient 503 responses with ErrUnavailable so callers
// can decide to retry from the structured status code rather than the error
// text. Everything else passes through as terminal.
func wrapUpstream(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusServiceUnavailable {
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func fromAPI(item *youtube.LiveBroadcast) model.Broadcast {
	b := model.Broadcast{
		ID:     item.Id,
		URL:    EmbedURL(item.Id),
		Status: model.StatusUnknown,
	}
	if item.Snippet != nil {
		b.Title = item.Snippet.Title
		b.Description = item.Snippet.Description
		if t, err := time.Parse(time.RFC3339, item.Snippet.ScheduledStartTime); err == nil {
			b.ScheduledStart = t.UTC()
		}
		if t, err := time.Parse(time.RFC3339, item.Snippet.ScheduledEndTime); err == nil {
			b.ScheduledEnd = t.UTC()
		}
	}
	if item.Status != nil {
		b.Status = lifecycleStatus(item.Status.LifeCycleStatus)
	}
	return b
}

// lifecycleStatus folds the platform's lifeCycleStatus values into the
// statuses the rest of the system understands.
func lifecycleStatus(s string) model.LifecycleStatus {
	switch s {
	case "created", "ready":
		return model.StatusUpcoming
	case "testing", "testStarting":
		return model.StatusTesting
	case "liveStarting":
		return model.StatusLiveStarting
	case "live":
		return model.StatusLive
	case "complete", "revoked":
		return model.StatusComplete
	default:
		return model.StatusUnknown
	}
}
