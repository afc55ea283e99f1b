package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Mock VoiceCloningClient
type VoiceCloningClient struct {
	mock.Mock
}

func (m *VoiceCloningClient) CreateVoiceModel(ctx context.Context, audioURL, name string) (string, error) {
	args := m.Called(ctx, audioURL, name)
	return args.String(0), args.Error(1)
}
