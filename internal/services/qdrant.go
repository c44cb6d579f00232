package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// GuideStore holds chunked coaching-guide documents for mentor retrieval.
type GuideStore interface {
	InitCollection() error
	UpsertGuideChunk(ctx context.Context, guideID, topic, text string, embedding []float32) error
	SearchGuides(ctx context.Context, queryEmbedding []float32, topic string, limit int) ([]SearchResult, error)
	DeleteGuide(ctx context.Context, guideID string) error
}

type SearchResult struct {
	ID    string
	Score float32
	Text  string
	Topic string
}

type guideStore struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewGuideStore(urlStr, apiKey, collectionName string) (GuideStore, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port, not the REST one
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &guideStore{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements GuideStore.
func (q *guideStore) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Guide collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// UpsertGuideChunk implements GuideStore.
func (q *guideStore) UpsertGuideChunk(ctx context.Context, guideID, topic, text string, embedding []float32) error {
	pointID := uuid.New()

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(pointID.ID())),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"guide_id": guideID,
			"topic":    topic,
			"text":     text,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// SearchGuides implements GuideStore.
func (q *guideStore) SearchGuides(ctx context.Context, queryEmbedding []float32, topic string, limit int) ([]SearchResult, error) {
	var filter *qdrant.Filter
	if topic != "" {
		filter = &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("topic", topic),
			},
		}
	}

	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var results []SearchResult
	for _, point := range searchResult {
		payload := point.Payload

		result := SearchResult{
			Score: point.Score,
		}

		if guideID, ok := payload["guide_id"]; ok {
			if val, ok := guideID.GetKind().(*qdrant.Value_StringValue); ok {
				result.ID = val.StringValue
			}
		}

		if text, ok := payload["text"]; ok {
			if val, ok := text.GetKind().(*qdrant.Value_StringValue); ok {
				result.Text = val.StringValue
			}
		}

		if topicVal, ok := payload["topic"]; ok {
			if val, ok := topicVal.GetKind().(*qdrant.Value_StringValue); ok {
				result.Topic = val.StringValue
			}
		}

		results = append(results, result)
	}

	return results, nil
}

// DeleteGuide implements GuideStore.
func (q *guideStore) DeleteGuide(ctx context.Context, guideID string) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("guide_id", guideID),
		},
	}

	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete guide: %w", err)
	}

	return nil
}
