package adapter

import (
	"context"
	"net/http"
	"strconv"

	"github.com/junerver/prompt-keeper/internal/transport"
	"github.com/junerver/prompt-keeper/models"
)

// Backend paths of the prompt resource.
const (
	PathList        = "/system/prompt/list"
	PathInfo        = "/system/prompt/info/"
	PathAdd         = "/system/prompt/add"
	PathEdit        = "/system/prompt/edit"
	PathRemove      = "/system/prompt/remove/"
	PathBatchRemove = "/system/prompt/batchRemove"
	PathExport      = "/system/prompt/export"
)

type promptAPI struct {
	requester transport.Requester
}

// NewPromptAPI returns a [PromptAPI] issuing every call through requester.
// The client holds no other state and is safe for concurrent use as long as
// requester is.
func NewPromptAPI(requester transport.Requester) PromptAPI {
	return &promptAPI{requester: requester}
}

func (a *promptAPI) List(ctx context.Context, query models.PromptQuery) (*transport.Response, error) {
	return a.requester.Do(ctx, transport.Request{
		Method: http.MethodGet,
		URL:    PathList,
		Params: query,
	})
}

func (a *promptAPI) Get(ctx context.Context, id int64) (*transport.Response, error) {
	return a.requester.Do(ctx, transport.Request{
		Method: http.MethodGet,
		URL:    PathInfo + formatID(id),
	})
}

func (a *promptAPI) Add(ctx context.Context, prompt models.Prompt) (*transport.Response, error) {
	return a.requester.Do(ctx, transport.Request{
		Method: http.MethodPost,
		URL:    PathAdd,
		Data:   prompt,
	})
}

func (a *promptAPI) Update(ctx context.Context, prompt models.Prompt) (*transport.Response, error) {
	return a.requester.Do(ctx, transport.Request{
		Method: http.MethodPost,
		URL:    PathEdit,
		Data:   prompt,
	})
}

func (a *promptAPI) Delete(ctx context.Context, id int64) (*transport.Response, error) {
	return a.requester.Do(ctx, transport.Request{
		Method: http.MethodPost,
		URL:    PathRemove + formatID(id),
	})
}

func (a *promptAPI) BatchDelete(ctx context.Context, ids []int64) (*transport.Response, error) {
	return a.requester.Do(ctx, transport.Request{
		Method: http.MethodPost,
		URL:    PathBatchRemove,
		Data:   models.BatchRemoveRequest{IDs: ids},
	})
}

func (a *promptAPI) Export(ctx context.Context, query models.PromptQuery) (*transport.Response, error) {
	return a.requester.Do(ctx, transport.Request{
		Method: http.MethodPost,
		URL:    PathExport,
		Params: query,
	})
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
