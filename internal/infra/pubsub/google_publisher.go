package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"catermatch/internal/domain/service"
	"catermatch/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client   *pubsub.Client
	requests *pubsub.Publisher
	results  *pubsub.Publisher // nil when no results topic is configured
	logger   *slog.Logger
}

// NewGooglePubSubPublisher creates a publisher for the match request topic and,
// when resultsTopicID is set, the matches-ready topic.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID, resultsTopicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topics := []string{topicID}
	if resultsTopicID != "" {
		topics = append(topics, resultsTopicID)
	}

	for _, topic := range topics {
		_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
			Topic: fmt.Sprintf("projects/%s/topics/%s", projectID, topic),
		})
		if err != nil {
			client.Close()

			return nil, errors.Wrapf(err, "failed to get topic %s", topic)
		}
	}

	p := &googlePubSubPublisher{
		client:   client,
		requests: client.Publisher(topicID),
		logger:   logger,
	}
	if resultsTopicID != "" {
		p.results = client.Publisher(resultsTopicID)
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
		slog.String("results_topic_id", resultsTopicID),
	)

	return p, nil
}

// PublishMatchRequested publishes a match request for the worker
func (p *googlePubSubPublisher) PublishMatchRequested(ctx context.Context, event *service.MatchRequestedEvent) error {
	serverID, err := p.publish(ctx, p.requests, event, attributesFor(event.EventID, event.RequestID))
	if err != nil {
		return err
	}

	p.logger.Info("[GooglePubSub] Match request published",
		slog.String("event_request_id", event.EventID),
		slog.String("server_id", serverID),
	)

	return nil
}

// PublishMatchesReady publishes a matches-ready notification if a results topic exists
func (p *googlePubSubPublisher) PublishMatchesReady(ctx context.Context, event *service.MatchesReadyEvent) error {
	if p.results == nil {
		return nil
	}

	serverID, err := p.publish(ctx, p.results, event, attributesFor(event.EventID, event.RequestID))
	if err != nil {
		return err
	}

	p.logger.Info("[GooglePubSub] Matches ready published",
		slog.String("event_request_id", event.EventID),
		slog.Int("match_count", event.MatchCount),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) publish(ctx context.Context, publisher *pubsub.Publisher, event any, attributes map[string]string) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", errors.WithStack(err)
	}

	result := publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return serverID, nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.requests != nil {
		p.requests.Stop()
	}
	if p.results != nil {
		p.results.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

func attributesFor(eventID, requestID string) map[string]string {
	attributes := map[string]string{
		"event_request_id": eventID,
	}
	if requestID != "" {
		attributes["request_id"] = requestID
	}

	return attributes
}
