// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-coll-sync/internal/adapter"
	"github.com/MKhiriev/go-coll-sync/internal/logger"
	"github.com/MKhiriev/go-coll-sync/internal/mock"
	"github.com/MKhiriev/go-coll-sync/internal/service"
	"github.com/MKhiriev/go-coll-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCollection = "bookmarks"

type downloaderMocks struct {
	client      *mock.MockCollectionClient
	checkpoints *mock.MockCheckpointRepository
	applier     *mock.MockBatchApplier
}

func newTestDownloader(t *testing.T, limit int) (service.CollectionDownloader, downloaderMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := downloaderMocks{
		client:      mock.NewMockCollectionClient(ctrl),
		checkpoints: mock.NewMockCheckpointRepository(ctrl),
		applier:     mock.NewMockBatchApplier(ctrl),
	}

	d := service.NewCollectionDownloader(testCollection, limit, m.client, m.checkpoints, m.applier, logger.Nop())
	return d, m
}

func TestCollectionDownloader_StartPassIfNeeded_UnchangedShortCircuit(t *testing.T) {
	d, m := newTestDownloader(t, 10)
	ctx := context.Background()

	m.client.EXPECT().GetCollectionInfo(ctx).
		Return(map[string]models.Timestamp{testCollection: 300}, nil)
	m.checkpoints.EXPECT().Load(ctx, testCollection).
		Return(models.Checkpoint{LastModified: 300}, nil)

	started, err := d.StartPassIfNeeded(ctx)

	require.NoError(t, err)
	assert.False(t, started)
}

func TestCollectionDownloader_StartPassIfNeeded_ServerChanged(t *testing.T) {
	d, m := newTestDownloader(t, 10)
	ctx := context.Background()

	m.client.EXPECT().GetCollectionInfo(ctx).
		Return(map[string]models.Timestamp{testCollection: 500}, nil)
	m.checkpoints.EXPECT().Load(ctx, testCollection).
		Return(models.Checkpoint{LastModified: 300}, nil)

	started, err := d.StartPassIfNeeded(ctx)

	require.NoError(t, err)
	assert.True(t, started)
}

// Равные таймстемпы, но сохранился offset: прошлый проход не дошёл до конца,
// его нужно продолжить.
func TestCollectionDownloader_StartPassIfNeeded_ResumesHalfFinishedPass(t *testing.T) {
	d, m := newTestDownloader(t, 10)
	ctx := context.Background()

	m.client.EXPECT().GetCollectionInfo(ctx).
		Return(map[string]models.Timestamp{testCollection: 300}, nil)
	m.checkpoints.EXPECT().Load(ctx, testCollection).
		Return(models.Checkpoint{LastModified: 300, NextOffset: "tok-7"}, nil)

	started, err := d.StartPassIfNeeded(ctx)

	require.NoError(t, err)
	assert.True(t, started)
}

// Коллекция пропала из /info/collections: состояния на сервере нет,
// проход не стартует даже при ненулевом локальном last_modified.
func TestCollectionDownloader_StartPassIfNeeded_CollectionNotReported(t *testing.T) {
	d, m := newTestDownloader(t, 10)
	ctx := context.Background()

	m.client.EXPECT().GetCollectionInfo(ctx).
		Return(map[string]models.Timestamp{"history": 700}, nil)

	started, err := d.StartPassIfNeeded(ctx)

	require.NoError(t, err)
	assert.False(t, started)

	// Нет прохода — нет и страниц.
	_, err = d.FetchNextPage(ctx)
	assert.ErrorIs(t, err, service.ErrPassNotStarted)
}

func TestCollectionDownloader_StartPassIfNeeded_ProbeError(t *testing.T) {
	d, m := newTestDownloader(t, 10)
	ctx := context.Background()

	m.client.EXPECT().GetCollectionInfo(ctx).
		Return(nil, adapter.ErrInternalServerError)

	_, err := d.StartPassIfNeeded(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

func TestCollectionDownloader_FetchNextPage_WithoutStartedPass(t *testing.T) {
	d, _ := newTestDownloader(t, 10)

	result, err := d.FetchNextPage(context.Background())

	assert.ErrorIs(t, err, service.ErrPassNotStarted)
	assert.Equal(t, service.PageNoData, result.Status)
}

func startPass(t *testing.T, d service.CollectionDownloader, m downloaderMocks, serverModified models.Timestamp, cp models.Checkpoint) {
	t.Helper()
	ctx := context.Background()

	m.client.EXPECT().GetCollectionInfo(ctx).
		Return(map[string]models.Timestamp{testCollection: serverModified}, nil)
	m.checkpoints.EXPECT().Load(ctx, testCollection).
		Return(cp, nil)

	started, err := d.StartPassIfNeeded(ctx)
	require.NoError(t, err)
	require.True(t, started)
}

func TestCollectionDownloader_FetchNextPage_SinglePageCompletes(t *testing.T) {
	d, m := newTestDownloader(t, 10)
	ctx := context.Background()

	startPass(t, d, m, 300, models.Checkpoint{})

	records := []models.Record{
		{ID: "c", Modified: 300, Payload: []byte(`{}`)},
		{ID: "b", Modified: 200, Payload: []byte(`{}`)},
		{ID: "a", Modified: 100, Payload: []byte(`{}`)},
	}

	m.checkpoints.EXPECT().Load(ctx, testCollection).
		Return(models.Checkpoint{}, nil)
	// запись чекпоинта строго до применения батча
	gomock.InOrder(
		m.client.EXPECT().FetchBatch(ctx, models.FetchRequest{
			Collection: testCollection,
			Newer:      0,
			Limit:      10,
		}).Return(models.BatchResponse{Records: records, LastModified: 300}, nil),
		m.checkpoints.EXPECT().SetNextOffset(ctx, testCollection, ""),
		m.checkpoints.EXPECT().SetBaseTimestamp(ctx, testCollection, models.Timestamp(99)),
		m.applier.EXPECT().ApplyBatch(ctx, testCollection, records),
		m.checkpoints.EXPECT().SetLastModified(ctx, testCollection, models.Timestamp(300)),
	)

	result, err := d.FetchNextPage(ctx)

	require.NoError(t, err)
	assert.Equal(t, service.PageCompleted, result.Status)
	assert.Equal(t, 3, result.Records)
}

func TestCollectionDownloader_FetchNextPage_ContinuationCarriesPrecondition(t *testing.T) {
	d, m := newTestDownloader(t, 3)
	ctx := context.Background()

	startPass(t, d, m, 300, models.Checkpoint{NextOffset: "tok-1"})

	records := []models.Record{
		{ID: "b", Modified: 150, Payload: []byte(`{}`)},
	}

	m.checkpoints.EXPECT().Load(ctx, testCollection).
		Return(models.Checkpoint{BaseTimestamp: 99, NextOffset: "tok-1"}, nil)
	m.client.EXPECT().FetchBatch(ctx, models.FetchRequest{
		Collection:      testCollection,
		Newer:           99,
		Limit:           3,
		Offset:          "tok-1",
		UnmodifiedSince: 300,
	}).Return(models.BatchResponse{Records: records, NextOffset: "tok-2", LastModified: 300}, nil)
	m.checkpoints.EXPECT().SetNextOffset(ctx, testCollection, "tok-2")
	m.checkpoints.EXPECT().SetBaseTimestamp(ctx, testCollection, models.Timestamp(149))
	m.applier.EXPECT().ApplyBatch(ctx, testCollection, records)

	result, err := d.FetchNextPage(ctx)

	require.NoError(t, err)
	assert.Equal(t, service.PageContinuing, result.Status)
	assert.Equal(t, 1, result.Records)
}

func TestCollectionDownloader_FetchNextPage_BaseCursorSaturatesAtZero(t *testing.T) {
	d, m := newTestDownloader(t, 10)
	ctx := context.Background()

	startPass(t, d, m, 300, models.Checkpoint{})

	records := []models.Record{
		{ID: "epoch", Modified: 0, Payload: []byte(`{}`)},
	}

	m.checkpoints.EXPECT().Load(ctx, testCollection).
		Return(models.Checkpoint{}, nil)
	m.client.EXPECT().FetchBatch(ctx, gomock.Any()).
		Return(models.BatchResponse{Records: records, LastModified: 300}, nil)
	m.checkpoints.EXPECT().SetNextOffset(ctx, testCollection, "")
	m.checkpoints.EXPECT().SetBaseTimestamp(ctx, testCollection, models.Timestamp(0))
	m.applier.EXPECT().ApplyBatch(ctx, testCollection, records)
	m.checkpoints.EXPECT().SetLastModified(ctx, testCollection, models.Timestamp(300))

	result, err := d.FetchNextPage(ctx)

	require.NoError(t, err)
	assert.Equal(t, service.PageCompleted, result.Status)
}

func TestCollectionDownloader_FetchNextPage_EmptyPageCompletesPass(t *testing.T) {
	d, m := newTestDownloader(t, 10)
	ctx := context.Background()

	startPass(t, d, m, 300, models.Checkpoint{BaseTimestamp: 299})

	m.checkpoints.EXPECT().Load(ctx, testCollection).
		Return(models.Checkpoint{BaseTimestamp: 299}, nil)
	m.client.EXPECT().FetchBatch(ctx, gomock.Any()).
		Return(models.BatchResponse{LastModified: 300}, nil)
	m.checkpoints.EXPECT().SetNextOffset(ctx, testCollection, "")
	m.applier.EXPECT().ApplyBatch(ctx, testCollection, nil)
	m.checkpoints.EXPECT().SetLastModified(ctx, testCollection, models.Timestamp(300))

	result, err := d.FetchNextPage(ctx)

	require.NoError(t, err)
	assert.Equal(t, service.PageCompleted, result.Status)
	assert.Zero(t, result.Records)
}

func TestCollectionDownloader_FetchNextPage_ConflictDiscardsOffsetOnly(t *testing.T) {
	d, m := newTestDownloader(t, 10)
	ctx := context.Background()

	startPass(t, d, m, 300, models.Checkpoint{NextOffset: "tok-1"})

	m.checkpoints.EXPECT().Load(ctx, testCollection).
		Return(models.Checkpoint{BaseTimestamp: 99, NextOffset: "tok-1"}, nil)
	m.client.EXPECT().FetchBatch(ctx, gomock.Any()).
		Return(models.BatchResponse{}, adapter.ErrPreconditionFailed)
	// только offset: base_timestamp сохраняет окно повторной выборки
	m.checkpoints.EXPECT().SetNextOffset(ctx, testCollection, "")

	result, err := d.FetchNextPage(ctx)

	require.NoError(t, err)
	assert.Equal(t, service.PageInterrupted, result.Status)

	// пройденный конфликт завершает проход, следующий требует нового старта
	_, err = d.FetchNextPage(ctx)
	assert.ErrorIs(t, err, service.ErrPassNotStarted)
}

func TestCollectionDownloader_FetchNextPage_ApplyFailurePropagates(t *testing.T) {
	d, m := newTestDownloader(t, 10)
	ctx := context.Background()

	startPass(t, d, m, 300, models.Checkpoint{})

	applyErr := errors.New("disk full")
	records := []models.Record{{ID: "a", Modified: 100, Payload: []byte(`{}`)}}

	m.checkpoints.EXPECT().Load(ctx, testCollection).
		Return(models.Checkpoint{}, nil)
	m.client.EXPECT().FetchBatch(ctx, gomock.Any()).
		Return(models.BatchResponse{Records: records, LastModified: 300}, nil)
	m.checkpoints.EXPECT().SetNextOffset(ctx, testCollection, "")
	m.checkpoints.EXPECT().SetBaseTimestamp(ctx, testCollection, models.Timestamp(99))
	m.applier.EXPECT().ApplyBatch(ctx, testCollection, records).Return(applyErr)

	_, err := d.FetchNextPage(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, applyErr)
}

func TestCollectionDownloader_Reset(t *testing.T) {
	d, m := newTestDownloader(t, 10)
	ctx := context.Background()

	m.checkpoints.EXPECT().Reset(ctx, testCollection)

	require.NoError(t, d.Reset(ctx))

	_, err := d.FetchNextPage(ctx)
	assert.ErrorIs(t, err, service.ErrPassNotStarted)
}

// fakeCheckpoints — чекпоинты в памяти для сквозных сценариев.
type fakeCheckpoints struct {
	mu sync.Mutex
	cp models.Checkpoint
}

func (f *fakeCheckpoints) Load(_ context.Context, _ string) (models.Checkpoint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cp, nil
}

func (f *fakeCheckpoints) SetBaseTimestamp(_ context.Context, _ string, ts models.Timestamp) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cp.BaseTimestamp = ts
	return nil
}

func (f *fakeCheckpoints) SetLastModified(_ context.Context, _ string, ts models.Timestamp) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cp.LastModified = ts
	return nil
}

func (f *fakeCheckpoints) SetNextOffset(_ context.Context, _ string, offset string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cp.NextOffset = offset
	return nil
}

func (f *fakeCheckpoints) Reset(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cp = models.Checkpoint{}
	return nil
}

// fakeCollectionServer отдаёт страницы как настоящий сервер: сортировка
// newest-first, limit, offset-токены и 412 при изменении коллекции посреди
// offset-цепочки.
type fakeCollectionServer struct {
	records  []models.Record // отсортированы по убыванию modified
	modified models.Timestamp
	fetches  int
}

func (f *fakeCollectionServer) SetToken(string) {}

func (f *fakeCollectionServer) Token() string { return "" }

func (f *fakeCollectionServer) GetCollectionInfo(context.Context) (map[string]models.Timestamp, error) {
	return map[string]models.Timestamp{testCollection: f.modified}, nil
}

// Offset-токен непрозрачен для клиента: сервер кодирует в нём позицию и
// границу newer исходного запроса, чтобы цепочка продолжала тот же срез.
func (f *fakeCollectionServer) FetchBatch(_ context.Context, req models.FetchRequest) (models.BatchResponse, error) {
	f.fetches++

	if req.UnmodifiedSince > 0 && f.modified > req.UnmodifiedSince {
		return models.BatchResponse{}, adapter.ErrPreconditionFailed
	}

	start := 0
	newer := req.Newer
	if req.Offset != "" {
		var tokenNewer uint64
		if _, err := fmt.Sscanf(req.Offset, "%d:%d", &tokenNewer, &start); err != nil {
			return models.BatchResponse{}, adapter.ErrBadRequest
		}
		newer = models.Timestamp(tokenNewer)
	}

	var matched []models.Record
	for _, r := range f.records {
		if r.Modified > newer {
			matched = append(matched, r)
		}
	}

	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if req.Limit > 0 && start+req.Limit < end {
		end = start + req.Limit
	}

	resp := models.BatchResponse{
		Records:      matched[start:end],
		LastModified: f.modified,
	}
	if end < len(matched) {
		resp.NextOffset = fmt.Sprintf("%d:%d", uint64(newer), end)
	}
	return resp, nil
}

// collectingApplier запоминает все применённые записи и батчи.
type collectingApplier struct {
	applied map[string]models.Record
	batches [][]models.Record
	total   int
}

func (a *collectingApplier) ApplyBatch(_ context.Context, _ string, records []models.Record) error {
	for _, r := range records {
		a.applied[r.ID] = r
	}
	a.batches = append(a.batches, records)
	a.total += len(records)
	return nil
}

// Пять записей с совпадающими таймстемпами на границе страницы: проход в две
// страницы доставляет все записи ровно по одному разу.
func TestCollectionDownloader_TwoPagePassWithTiedTimestamps(t *testing.T) {
	server := &fakeCollectionServer{
		modified: 300,
		records: []models.Record{
			{ID: "e", Modified: 300, Payload: []byte(`{}`)},
			{ID: "d", Modified: 200, Payload: []byte(`{}`)},
			{ID: "c", Modified: 100, Payload: []byte(`{}`)},
			{ID: "b", Modified: 100, Payload: []byte(`{}`)},
			{ID: "a", Modified: 100, Payload: []byte(`{}`)},
		},
	}
	checkpoints := &fakeCheckpoints{}
	applier := &collectingApplier{applied: make(map[string]models.Record)}

	d := service.NewCollectionDownloader(testCollection, 3, server, checkpoints, applier, logger.Nop())
	ctx := context.Background()

	started, err := d.StartPassIfNeeded(ctx)
	require.NoError(t, err)
	require.True(t, started)

	result, err := d.FetchNextPage(ctx)
	require.NoError(t, err)
	require.Equal(t, service.PageContinuing, result.Status)
	assert.Equal(t, models.Timestamp(99), checkpoints.cp.BaseTimestamp)

	result, err = d.FetchNextPage(ctx)
	require.NoError(t, err)
	require.Equal(t, service.PageCompleted, result.Status)

	assert.Len(t, applier.applied, 5)
	assert.Equal(t, 5, applier.total, "no record delivered twice")
	assert.Len(t, applier.batches, 2)
	assert.Equal(t, models.Timestamp(300), checkpoints.cp.LastModified)
}

// Коллекция меняется между страницами offset-цепочки: проход прерывается,
// перезапускается с временного курсора и не теряет ни одной записи, включая
// записи с одинаковым modified на границе страницы.
func TestCollectionDownloader_ConflictRedeliveryLosesNothing(t *testing.T) {
	server := &fakeCollectionServer{
		modified: 300,
		records: []models.Record{
			{ID: "e", Modified: 300, Payload: []byte(`{}`)},
			{ID: "d", Modified: 200, Payload: []byte(`{}`)},
			{ID: "c", Modified: 100, Payload: []byte(`{}`)},
			{ID: "b", Modified: 100, Payload: []byte(`{}`)},
			{ID: "a", Modified: 100, Payload: []byte(`{}`)},
		},
	}
	checkpoints := &fakeCheckpoints{}
	applier := &collectingApplier{applied: make(map[string]models.Record)}

	d := service.NewCollectionDownloader(testCollection, 3, server, checkpoints, applier, logger.Nop())
	ctx := context.Background()

	started, err := d.StartPassIfNeeded(ctx)
	require.NoError(t, err)
	require.True(t, started)

	// первая страница: e, d, c — остаётся offset-хвост
	result, err := d.FetchNextPage(ctx)
	require.NoError(t, err)
	require.Equal(t, service.PageContinuing, result.Status)

	// сервер меняется до следующего запроса цепочки
	server.modified = 400
	server.records = append([]models.Record{
		{ID: "f", Modified: 400, Payload: []byte(`{}`)},
	}, server.records...)

	result, err = d.FetchNextPage(ctx)
	require.NoError(t, err)
	require.Equal(t, service.PageInterrupted, result.Status)

	// перезапуск с временного курсора, проход до конца
	started, err = d.StartPassIfNeeded(ctx)
	require.NoError(t, err)
	require.True(t, started)

	for {
		result, err = d.FetchNextPage(ctx)
		require.NoError(t, err)
		if result.Status == service.PageCompleted {
			break
		}
		require.Equal(t, service.PageContinuing, result.Status)
	}

	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		_, ok := applier.applied[id]
		assert.True(t, ok, fmt.Sprintf("record %s was skipped", id))
	}
	assert.Equal(t, models.Timestamp(400), checkpoints.cp.LastModified)
	assert.Empty(t, checkpoints.cp.NextOffset)

	// повторная проверка: коллекция не менялась, новый проход не нужен
	started, err = d.StartPassIfNeeded(ctx)
	require.NoError(t, err)
	assert.False(t, started)
}
