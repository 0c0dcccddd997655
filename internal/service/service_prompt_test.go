// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/internal/mock"
	"github.com/junerver/prompt-keeper/internal/transport"
	"github.com/junerver/prompt-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPromptSvc(t *testing.T) (PromptService, *mock.MockPromptAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockPromptAPI(ctrl)
	return NewPromptService(api, logger.Nop()), api
}

func jsonResponse(body string) *transport.Response {
	return &transport.Response{StatusCode: http.StatusOK, Body: []byte(body)}
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestPromptService_List(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "page wrapped in data",
			body: `{"code":200,"msg":"查询成功","data":{"total":3,"rows":[{"id":1,"content":"a","enabled":1},{"id":2,"content":"b","enabled":0}]}}`,
		},
		{
			name: "bare table payload",
			body: `{"total":3,"rows":[{"id":1,"content":"a","enabled":1},{"id":2,"content":"b","enabled":0}],"code":200,"msg":"查询成功"}`,
		},
		{
			name: "null data falls back to top level",
			body: `{"code":200,"msg":"ok","data":null,"total":3,"rows":[{"id":1,"content":"a","enabled":1},{"id":2,"content":"b","enabled":0}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, api := newTestPromptSvc(t)
			ctx := context.Background()
			query := models.PromptQuery{PageNum: 1, PageSize: 2}

			api.EXPECT().List(ctx, query).Return(jsonResponse(tt.body), nil)

			page, err := svc.List(ctx, query)
			require.NoError(t, err)

			assert.EqualValues(t, 3, page.Total)
			require.Len(t, page.Rows, 2)
			assert.EqualValues(t, 1, page.Rows[0].ID)
			assert.True(t, page.Rows[0].IsEnabled())
			assert.False(t, page.Rows[1].IsEnabled())
		})
	}
}

func TestPromptService_List_MalformedData(t *testing.T) {
	svc, api := newTestPromptSvc(t)

	api.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(jsonResponse(`{"code":200,"data":{"total":"many","rows":[]}}`), nil)

	_, err := svc.List(context.Background(), models.PromptQuery{})
	assert.ErrorContains(t, err, "decode page data")
}

func TestPromptService_List_TransportError(t *testing.T) {
	svc, api := newTestPromptSvc(t)

	api.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: token expired", transport.ErrUnauthorized))

	_, err := svc.List(context.Background(), models.PromptQuery{})
	assert.ErrorIs(t, err, transport.ErrUnauthorized)
}

func TestPromptService_List_MalformedBody(t *testing.T) {
	svc, api := newTestPromptSvc(t)

	api.EXPECT().List(gomock.Any(), gomock.Any()).Return(jsonResponse(`<html>`), nil)

	_, err := svc.List(context.Background(), models.PromptQuery{})
	assert.ErrorContains(t, err, "decode response body")
}

// ── ListAll ──────────────────────────────────────────────────────────────────

func TestPromptService_ListAll_WalksPages(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
	}{
		{
			name: "page wrapped in data",
			pages: []string{
				`{"code":200,"msg":"ok","data":{"total":3,"rows":[{"id":1},{"id":2}]}}`,
				`{"code":200,"msg":"ok","data":{"total":3,"rows":[{"id":3}]}}`,
			},
		},
		{
			name: "bare table payload",
			pages: []string{
				`{"total":3,"rows":[{"id":1},{"id":2}],"code":200}`,
				`{"total":3,"rows":[{"id":3}],"code":200}`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, api := newTestPromptSvc(t)
			ctx := context.Background()

			gomock.InOrder(
				api.EXPECT().List(ctx, models.PromptQuery{PageNum: 1, PageSize: 2, Content: "x"}).
					Return(jsonResponse(tt.pages[0]), nil),
				api.EXPECT().List(ctx, models.PromptQuery{PageNum: 2, PageSize: 2, Content: "x"}).
					Return(jsonResponse(tt.pages[1]), nil),
			)

			all, err := svc.ListAll(ctx, models.PromptQuery{PageNum: 7, PageSize: 2, Content: "x"})
			require.NoError(t, err)

			require.Len(t, all, 3)
			assert.EqualValues(t, 1, all[0].ID)
			assert.EqualValues(t, 3, all[2].ID)
		})
	}
}

func TestPromptService_ListAll_DefaultPageSize(t *testing.T) {
	svc, api := newTestPromptSvc(t)

	api.EXPECT().List(gomock.Any(), models.PromptQuery{PageNum: 1, PageSize: DefaultPageSize}).
		Return(jsonResponse(`{"code":200,"msg":"ok","data":{"total":0,"rows":[]}}`), nil)

	all, err := svc.ListAll(context.Background(), models.PromptQuery{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

// TestPromptService_ListAll_StopsOnEmptyPage guards against a total that
// never gets reached (rows deleted while paging).
func TestPromptService_ListAll_StopsOnEmptyPage(t *testing.T) {
	svc, api := newTestPromptSvc(t)

	gomock.InOrder(
		api.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(jsonResponse(`{"code":200,"data":{"total":10,"rows":[{"id":1}]}}`), nil),
		api.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(jsonResponse(`{"code":200,"data":{"total":10,"rows":[]}}`), nil),
	)

	all, err := svc.ListAll(context.Background(), models.PromptQuery{PageSize: 1})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPromptService_ListAll_PageError(t *testing.T) {
	svc, api := newTestPromptSvc(t)

	gomock.InOrder(
		api.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(jsonResponse(`{"code":200,"data":{"total":2,"rows":[{"id":1}]}}`), nil),
		api.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, transport.ErrBadGateway),
	)

	all, err := svc.ListAll(context.Background(), models.PromptQuery{PageSize: 1})
	assert.Nil(t, all)
	assert.ErrorIs(t, err, transport.ErrBadGateway)
	assert.ErrorContains(t, err, "page 2")
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestPromptService_Get(t *testing.T) {
	tests := []struct {
		name    string
		resp    *transport.Response
		err     error
		want    models.Prompt
		wantErr error
	}{
		{
			name: "found",
			resp: jsonResponse(`{"code":200,"msg":"操作成功","data":{"id":5,"content":"hello","remark":"r"}}`),
			want: models.Prompt{ID: 5, Content: "hello", Remark: "r"},
		},
		{
			name:    "null data",
			resp:    jsonResponse(`{"code":200,"msg":"操作成功"}`),
			wantErr: ErrPromptNotFound,
		},
		{
			name:    "transport error",
			err:     transport.ErrForbidden,
			wantErr: transport.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, api := newTestPromptSvc(t)
			api.EXPECT().Get(gomock.Any(), int64(5)).Return(tt.resp, tt.err)

			got, err := svc.Get(context.Background(), 5)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── writes ───────────────────────────────────────────────────────────────────

func TestPromptService_Writes(t *testing.T) {
	ctx := context.Background()
	prompt := models.Prompt{ID: 9, Content: "c"}

	t.Run("add", func(t *testing.T) {
		svc, api := newTestPromptSvc(t)
		api.EXPECT().Add(ctx, prompt).Return(jsonResponse(`{"code":200}`), nil)
		assert.NoError(t, svc.Add(ctx, prompt))
	})

	t.Run("update error", func(t *testing.T) {
		svc, api := newTestPromptSvc(t)
		api.EXPECT().Update(ctx, prompt).Return(nil, transport.ErrBackend)
		err := svc.Update(ctx, prompt)
		assert.ErrorIs(t, err, transport.ErrBackend)
		assert.ErrorContains(t, err, "update prompt 9")
	})

	t.Run("delete", func(t *testing.T) {
		svc, api := newTestPromptSvc(t)
		api.EXPECT().Delete(ctx, int64(9)).Return(jsonResponse(`{"code":200}`), nil)
		assert.NoError(t, svc.Delete(ctx, 9))
	})

	t.Run("batch delete", func(t *testing.T) {
		svc, api := newTestPromptSvc(t)
		api.EXPECT().BatchDelete(ctx, []int64{1, 2}).Return(jsonResponse(`{"code":200}`), nil)
		assert.NoError(t, svc.BatchDelete(ctx, []int64{1, 2}))
	})

	t.Run("batch delete without ids", func(t *testing.T) {
		svc, _ := newTestPromptSvc(t)
		assert.ErrorIs(t, svc.BatchDelete(ctx, nil), ErrNoPromptIDs)
	})
}

func TestPromptService_Export(t *testing.T) {
	svc, api := newTestPromptSvc(t)
	query := models.PromptQuery{Content: "x"}
	xlsx := []byte{0x50, 0x4b}

	api.EXPECT().Export(gomock.Any(), query).Return(&transport.Response{StatusCode: http.StatusOK, Body: xlsx}, nil)

	got, err := svc.Export(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, xlsx, got)
}
