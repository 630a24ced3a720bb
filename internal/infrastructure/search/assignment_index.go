// Package search mirrors assignments into Elasticsearch.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/mendly/mendly-backend/internal/domain/entity"
)

var searchFields = []string{"situation", "tanke", "kansla", "kropp", "lukt", "assignmentId"}

type AssignmentIndex struct {
	es      *elasticsearch.Client
	index   string
	timeout time.Duration
}

func NewAssignmentIndex(es *elasticsearch.Client, index string) *AssignmentIndex {
	return &AssignmentIndex{es: es, index: index, timeout: 3 * time.Second}
}

// Index upserts the assignment document under its id.
func (x *AssignmentIndex) Index(ctx context.Context, a *entity.Assignment) error {
	body, err := json.Marshal(a)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()

	req := esapi.IndexRequest{
		Index:      x.index,
		DocumentID: a.ID,
		Body:       bytes.NewReader(body),
		Refresh:    "false",
	}
	res, err := req.Do(ctx, x.es)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return responseError("index", res)
	}
	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source entity.Assignment `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (x *AssignmentIndex) Search(ctx context.Context, query string, size int) ([]entity.Assignment, error) {
	q := map[string]any{
		"size": size,
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": searchFields,
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()

	res, err := x.es.Search(
		x.es.Search.WithContext(ctx),
		x.es.Search.WithIndex(x.index),
		x.es.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, responseError("search", res)
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	out := make([]entity.Assignment, 0, len(sr.Hits.Hits))
	for _, h := range sr.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func responseError(op string, res *esapi.Response) error {
	b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
	return fmt.Errorf("elasticsearch %s: %s: %s", op, res.Status(), bytes.TrimSpace(b))
}
