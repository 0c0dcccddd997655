package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/junerver/prompt-keeper/internal/adapter"
	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/internal/transport"
	"github.com/junerver/prompt-keeper/models"
)

// DefaultPageSize is the page size ListAll uses when the query sets none.
const DefaultPageSize = 100

type promptService struct {
	api adapter.PromptAPI

	logger *logger.Logger
}

func NewPromptService(api adapter.PromptAPI, logger *logger.Logger) PromptService {
	return &promptService{api: api, logger: logger}
}

func (s *promptService) List(ctx context.Context, query models.PromptQuery) (models.PromptPage, error) {
	resp, err := s.api.List(ctx, query)
	if err != nil {
		return models.PromptPage{}, fmt.Errorf("list prompts: %w", err)
	}

	page, err := decodePage(resp)
	if err != nil {
		return models.PromptPage{}, fmt.Errorf("list prompts: %w", err)
	}

	return page, nil
}

// decodePage reads {total,rows} from the envelope's data, or from the top
// level when the backend answers with a bare table payload.
func decodePage(resp *transport.Response) (models.PromptPage, error) {
	env, err := resp.Envelope()
	if err != nil {
		return models.PromptPage{}, err
	}

	var page models.PromptPage
	data := bytes.TrimSpace(env.Data)
	if len(data) > 0 && !bytes.Equal(data, []byte("null")) {
		if err = json.Unmarshal(data, &page); err != nil {
			return models.PromptPage{}, fmt.Errorf("decode page data: %w", err)
		}
		return page, nil
	}

	if err = resp.Decode(&page); err != nil {
		return models.PromptPage{}, err
	}
	return page, nil
}

func (s *promptService) ListAll(ctx context.Context, query models.PromptQuery) ([]models.Prompt, error) {
	if query.PageSize <= 0 {
		query.PageSize = DefaultPageSize
	}

	var all []models.Prompt
	for query.PageNum = 1; ; query.PageNum++ {
		page, err := s.List(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", query.PageNum, err)
		}

		all = append(all, page.Rows...)
		if len(page.Rows) == 0 || int64(len(all)) >= page.Total {
			break
		}
	}

	s.logger.Debug().Int("count", len(all)).Int("pages", query.PageNum).Msg("listed all prompts")

	return all, nil
}

func (s *promptService) Get(ctx context.Context, id int64) (models.Prompt, error) {
	resp, err := s.api.Get(ctx, id)
	if err != nil {
		return models.Prompt{}, fmt.Errorf("get prompt %d: %w", id, err)
	}

	var result models.Result[*models.Prompt]
	if err = resp.Decode(&result); err != nil {
		return models.Prompt{}, fmt.Errorf("get prompt %d: %w", id, err)
	}
	if result.Data == nil {
		return models.Prompt{}, fmt.Errorf("get prompt %d: %w", id, ErrPromptNotFound)
	}

	return *result.Data, nil
}

func (s *promptService) Add(ctx context.Context, prompt models.Prompt) error {
	if _, err := s.api.Add(ctx, prompt); err != nil {
		return fmt.Errorf("add prompt: %w", err)
	}
	return nil
}

func (s *promptService) Update(ctx context.Context, prompt models.Prompt) error {
	if _, err := s.api.Update(ctx, prompt); err != nil {
		return fmt.Errorf("update prompt %d: %w", prompt.ID, err)
	}
	return nil
}

func (s *promptService) Delete(ctx context.Context, id int64) error {
	if _, err := s.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete prompt %d: %w", id, err)
	}
	return nil
}

func (s *promptService) BatchDelete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return ErrNoPromptIDs
	}

	if _, err := s.api.BatchDelete(ctx, ids); err != nil {
		return fmt.Errorf("batch delete %d prompts: %w", len(ids), err)
	}
	return nil
}

func (s *promptService) Export(ctx context.Context, query models.PromptQuery) ([]byte, error) {
	resp, err := s.api.Export(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("export prompts: %w", err)
	}
	return resp.Body, nil
}
