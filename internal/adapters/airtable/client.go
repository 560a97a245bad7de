package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/TedMN/mplsjrdevs/internal/domain"
)

// DefaultBaseURL is the Airtable REST endpoint.
const DefaultBaseURL = "https://api.airtable.com"

// pageSize is the largest page the list-records endpoint returns.
const pageSize = 100

// Config identifies the base and tables holding the schedule.
type Config struct {
	BaseURL         string
	APIKey          string
	BaseID          string
	EventsTable     string
	PresentersTable string
}

// listResponse is the list-records response shape.
type listResponse struct {
	Records []listRecord `json:"records"`
	Offset  string       `json:"offset"`
}

type listRecord struct {
	ID          string         `json:"id"`
	CreatedTime string         `json:"createdTime"`
	Fields      map[string]any `json:"fields"`
}

type airtableSource struct {
	client *http.Client
	config Config
}

// NewRecordSource returns a RecordSource that lists the configured Airtable tables.
func NewRecordSource(client *http.Client, config Config) domain.RecordSource {
	if client == nil {
		client = http.DefaultClient
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	config.BaseURL = strings.TrimSuffix(config.BaseURL, "/")
	return &airtableSource{client: client, config: config}
}

func (s *airtableSource) ListEvents(ctx context.Context) ([]domain.Record, error) {
	return s.listAll(ctx, s.config.EventsTable)
}

func (s *airtableSource) ListPresenters(ctx context.Context) ([]domain.Record, error) {
	return s.listAll(ctx, s.config.PresentersTable)
}

// listAll follows the offset cursor until every page of table has been read.
func (s *airtableSource) listAll(ctx context.Context, table string) ([]domain.Record, error) {
	if table == "" {
		return nil, fmt.Errorf("airtable table name is empty")
	}
	var out []domain.Record
	offset := ""
	for {
		page, err := s.listPage(ctx, table, offset)
		if err != nil {
			return nil, err
		}
		for _, rec := range page.Records {
			out = append(out, domain.Record{ID: rec.ID, Fields: rec.Fields})
		}
		if page.Offset == "" {
			return out, nil
		}
		offset = page.Offset
	}
}

func (s *airtableSource) listPage(ctx context.Context, table, offset string) (listResponse, error) {
	endpoint := fmt.Sprintf("%s/v0/%s/%s", s.config.BaseURL, url.PathEscape(s.config.BaseID), url.PathEscape(table))
	q := url.Values{}
	q.Set("pageSize", fmt.Sprint(pageSize))
	if offset != "" {
		q.Set("offset", offset)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return listResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return listResponse{}, fmt.Errorf("failed to fetch %s from airtable: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return listResponse{}, fmt.Errorf("airtable api returned status %d for %s", resp.StatusCode, table)
	}

	var data listResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return listResponse{}, fmt.Errorf("failed to decode airtable response: %w", err)
	}
	return data, nil
}
