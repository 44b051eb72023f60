package warmtransfer

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func testMFunc(ctx context.Context, event events.ConnectEvent) (TransferResponse, error) { //nolint
	return TransferResponse{}, nil
}

func TestMockingFetcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fn := NewMockFunction(ctrl)
	fetcher := NewMockFetcher(ctrl)
	mFetcher := &MockingFetcher{
		Fetcher: fetcher,
	}

	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(fn, nil)
	fn.EXPECT().Source().Return(testMFunc)

	mfn, _ := mFetcher.Fetch(context.Background(), "warmTransfer")
	require.IsType(t, testMFunc, mfn.Source()) // ensure the mock is the right signature

	res, err := mfn.Invoke(context.Background(), []byte(`{"Details":{}}`))
	require.NoError(t, err)
	require.NotEmpty(t, res)
}

func TestMockingFetcherError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := NewMockFetcher(ctrl)
	mFetcher := &MockingFetcher{
		Fetcher: fetcher,
	}

	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("fail"))

	_, err := mFetcher.Fetch(context.Background(), "warmTransfer")
	require.Error(t, err)
}
