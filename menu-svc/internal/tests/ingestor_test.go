package tests

import (
	"context"
	"testing"
	"time"

	"overcooked-menu/menu-svc/internal/domain"
	"overcooked-menu/menu-svc/internal/mocks"
	"overcooked-menu/menu-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const validSnapshotMessage = `{
	"slug": "north",
	"menu_type_slug": "lunch",
	"date": "2024-03-10",
	"scraping_date": "2024-03-10T08:00:00Z",
	"scraping_result": {
		"date": "2024-03-10",
		"menu_info": {"1": {"position": 0}},
		"menu_items": [
			{"menu_id": 1, "position": 0, "food": {"name": "Soup", "ingredients": "water"}},
			{"menu_id": 1, "position": 1, "food": null}
		]
	}
}`

func TestSnapshotIngestor_HandleMessage(t *testing.T) {
	soupHash := hashOf(t, domain.RawItem{Food: &domain.RawFood{Name: "Soup", Ingredients: "water"}})

	tests := []struct {
		name      string
		payload   string
		setupMock func(*mocks.SnapshotStore)
		wantErr   error
	}{
		{
			name:    "valid_snapshot_is_stamped_and_stored",
			payload: validSnapshotMessage,
			setupMock: func(m *mocks.SnapshotStore) {
				m.On("AppendSnapshot", mock.Anything, mock.MatchedBy(func(s *domain.Snapshot) bool {
					items := s.Result.MenuItems
					return s.LocationSlug == "north" && s.MenuTypeSlug == "lunch" && s.Date == "2024-03-10" &&
						len(items) == 2 && items[0].Hash == soupHash && items[1].Hash == ""
				})).Return(nil).Once()
			},
		},
		{
			name:      "undecodable_payload",
			payload:   `{"slug":`,
			setupMock: func(m *mocks.SnapshotStore) {},
			wantErr:   service.ErrMalformedRecord,
		},
		{
			name:      "missing_location",
			payload:   `{"menu_type_slug":"lunch","date":"2024-03-10","scraping_date":"2024-03-10T08:00:00Z"}`,
			setupMock: func(m *mocks.SnapshotStore) {},
			wantErr:   service.ErrMalformedRecord,
		},
		{
			name:      "missing_scrape_time",
			payload:   `{"slug":"north","menu_type_slug":"lunch","date":"2024-03-10"}`,
			setupMock: func(m *mocks.SnapshotStore) {},
			wantErr:   service.ErrMalformedRecord,
		},
		{
			name:      "bad_business_date",
			payload:   `{"slug":"north","menu_type_slug":"lunch","date":"10.03.2024","scraping_date":"2024-03-10T08:00:00Z"}`,
			setupMock: func(m *mocks.SnapshotStore) {},
			wantErr:   service.ErrMalformedRecord,
		},
		{
			name:    "store_unavailable",
			payload: validSnapshotMessage,
			setupMock: func(m *mocks.SnapshotStore) {
				m.On("AppendSnapshot", mock.Anything, mock.Anything).Return(assert.AnError).Once()
			},
			wantErr: service.ErrStoreUnavailable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewSnapshotStore(t)
			testCase.setupMock(store)

			ingestor := service.NewSnapshotIngestor(mocks.NewMessageReader(t), store, quietLogger())
			err := ingestor.HandleMessage(context.Background(), []byte(testCase.payload))

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSnapshotIngestor_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages := []kafka.Message{
		{Offset: 1, Value: []byte(validSnapshotMessage)},
		{Offset: 2, Value: []byte(`not json`)},
		{Offset: 3, Value: []byte(validSnapshotMessage)},
		{Offset: 4, Value: []byte(validSnapshotMessage)},
	}

	reader := mocks.NewMessageReader(t)
	for _, message := range messages {
		reader.On("FetchMessage", mock.Anything).Return(message, nil).Once()
	}
	reader.On("FetchMessage", mock.Anything).Run(func(mock.Arguments) { cancel() }).
		Return(kafka.Message{}, context.Canceled).Once()

	var committed []int64
	reader.On("CommitMessages", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		committed = append(committed, args.Get(1).(kafka.Message).Offset)
	}).Return(nil).Times(len(messages))

	store := mocks.NewSnapshotStore(t)
	store.On("AppendSnapshot", mock.Anything, mock.Anything).Return(nil).Once()
	store.On("AppendSnapshot", mock.Anything, mock.Anything).Return(assert.AnError).Twice()
	store.On("AppendSnapshot", mock.Anything, mock.Anything).Return(nil).Twice()

	ingestor := service.NewSnapshotIngestor(reader, store, quietLogger())
	ingestor.RetryDelay = time.Millisecond
	ingestor.Start(ctx)

	assert.Equal(t, []int64{1, 2, 3, 4}, committed)
	store.AssertNumberOfCalls(t, "AppendSnapshot", 5)
}

func TestSnapshotIngestor_StartStopsWhileRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := mocks.NewMessageReader(t)
	reader.On("FetchMessage", mock.Anything).
		Return(kafka.Message{Offset: 3, Value: []byte(validSnapshotMessage)}, nil).Once()

	store := mocks.NewSnapshotStore(t)
	store.On("AppendSnapshot", mock.Anything, mock.Anything).Run(func(mock.Arguments) { cancel() }).
		Return(assert.AnError).Once()

	ingestor := service.NewSnapshotIngestor(reader, store, quietLogger())
	ingestor.RetryDelay = time.Hour
	ingestor.Start(ctx)

	reader.AssertNotCalled(t, "CommitMessages", mock.Anything, mock.Anything)
	reader.AssertNumberOfCalls(t, "FetchMessage", 1)
}
