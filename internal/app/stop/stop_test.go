package stop_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tavor-dev/tavor-go/internal/app/stop"
	"github.com/tavor-dev/tavor-go/internal/log"
	"github.com/tavor-dev/tavor-go/internal/model"
	"github.com/tavor-dev/tavor-go/internal/remote/remotemock"
)

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		config stop.ServiceConfig
		expErr bool
	}{
		"valid config should create service": {
			config: stop.ServiceConfig{
				Repository: &remotemock.MockRepository{},
				Logger:     log.Noop,
			},
		},
		"missing repository should fail": {
			config: stop.ServiceConfig{
				Logger: log.Noop,
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			svc, err := stop.NewService(test.config)

			if test.expErr {
				require.Error(err)
				require.Nil(svc)
			} else {
				require.NoError(err)
				require.NotNil(svc)
			}
		})
	}
}

func TestService_Run(t *testing.T) {
	tests := map[string]struct {
		mock   func(m *remotemock.MockRepository)
		req    stop.Request
		expErr error
	}{
		"stop box": {
			mock: func(m *remotemock.MockRepository) {
				m.On("DeleteBox", mock.Anything, "b1").Once().Return(nil)
			},
			req: stop.Request{BoxID: "b1"},
		},
		"missing id should fail": {
			mock:   func(m *remotemock.MockRepository) {},
			req:    stop.Request{},
			expErr: model.ErrNotValid,
		},
		"stopping an unknown box should be a reportable error": {
			mock: func(m *remotemock.MockRepository) {
				m.On("DeleteBox", mock.Anything, "gone").Once().Return(&model.APIError{StatusCode: 404, Kind: model.ErrNotFound})
			},
			req:    stop.Request{BoxID: "gone"},
			expErr: model.ErrNotFound,
		},
		"transport failure should be propagated": {
			mock: func(m *remotemock.MockRepository) {
				m.On("DeleteBox", mock.Anything, "b1").Once().Return(&model.TransportError{Err: context.DeadlineExceeded})
			},
			req:    stop.Request{BoxID: "b1"},
			expErr: model.ErrTransport,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			mRepo := remotemock.NewMockRepository(t)
			test.mock(mRepo)

			svc, err := stop.NewService(stop.ServiceConfig{Repository: mRepo})
			require.NoError(err)

			err = svc.Run(context.Background(), test.req)

			if test.expErr != nil {
				assert.ErrorIs(err, test.expErr)
				return
			}
			assert.NoError(err)
		})
	}
}
