package lark

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockMessageSender struct {
	mock.Mock
}

func (m *MockMessageSender) SendText(ctx context.Context, receiveIDType, receiveID, text string) (string, error) {
	args := m.Called(receiveIDType, receiveID, text)
	return args.String(0), args.Error(1)
}

func (m *MockMessageSender) UploadFile(ctx context.Context, fileName, fileType string, data io.Reader) (string, error) {
	body, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	args := m.Called(fileName, fileType, string(body))
	return args.String(0), args.Error(1)
}

func (m *MockMessageSender) SendFile(ctx context.Context, receiveIDType, receiveID, fileKey string) (string, error) {
	args := m.Called(receiveIDType, receiveID, fileKey)
	return args.String(0), args.Error(1)
}

func TestNotifier_NotifyRun_SendsSummaryAndReport(t *testing.T) {
	report := filepath.Join(t.TempDir(), "2026-10-17-093015_报销88.00元.xlsx")
	require.NoError(t, os.WriteFile(report, []byte("xlsx"), 0644))

	sender := new(MockMessageSender)
	sender.On("SendText", "chat_id", "oc_1", "summary").Return("om_1", nil)
	sender.On("UploadFile", "2026-10-17-093015_报销88.00元.xlsx", "xls", "xlsx").Return("file_v2_1", nil)
	sender.On("SendFile", "chat_id", "oc_1", "file_v2_1").Return("om_2", nil)

	n := NewNotifier(sender, "chat_id", "oc_1", zap.NewNop())
	require.NoError(t, n.NotifyRun(context.Background(), "summary", report))

	sender.AssertExpectations(t)
}

func TestNotifier_NotifyRun_NoReport(t *testing.T) {
	sender := new(MockMessageSender)
	sender.On("SendText", "open_id", "ou_1", "summary").Return("om_1", nil)

	n := NewNotifier(sender, "open_id", "ou_1", zap.NewNop())
	require.NoError(t, n.NotifyRun(context.Background(), "summary", ""))

	sender.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifier_NotifyRun_Errors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("summary", func(t *testing.T) {
		sender := new(MockMessageSender)
		sender.On("SendText", mock.Anything, mock.Anything, mock.Anything).Return("", boom)

		err := NewNotifier(sender, "chat_id", "oc_1", zap.NewNop()).
			NotifyRun(context.Background(), "summary", "/nowhere.xlsx")
		assert.ErrorIs(t, err, boom)
		sender.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing report", func(t *testing.T) {
		sender := new(MockMessageSender)
		sender.On("SendText", mock.Anything, mock.Anything, mock.Anything).Return("om_1", nil)

		err := NewNotifier(sender, "chat_id", "oc_1", zap.NewNop()).
			NotifyRun(context.Background(), "summary", filepath.Join(t.TempDir(), "gone.xlsx"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("upload", func(t *testing.T) {
		report := filepath.Join(t.TempDir(), "r.xlsx")
		require.NoError(t, os.WriteFile(report, []byte("x"), 0644))
		sender := new(MockMessageSender)
		sender.On("SendText", mock.Anything, mock.Anything, mock.Anything).Return("om_1", nil)
		sender.On("UploadFile", "r.xlsx", "xls", "x").Return("", boom)

		err := NewNotifier(sender, "chat_id", "oc_1", zap.NewNop()).
			NotifyRun(context.Background(), "summary", report)
		assert.ErrorIs(t, err, boom)
		sender.AssertNotCalled(t, "SendFile", mock.Anything, mock.Anything, mock.Anything)
	})
}
