package lark

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// reportFileType is the IM upload type for spreadsheets.
const reportFileType = "xls"

// MessageSender is the part of MessageAPI the notifier needs.
type MessageSender interface {
	SendText(ctx context.Context, receiveIDType, receiveID, text string) (string, error)
	UploadFile(ctx context.Context, fileName, fileType string, data io.Reader) (string, error)
	SendFile(ctx context.Context, receiveIDType, receiveID, fileKey string) (string, error)
}

// Notifier posts run summaries, and the report they produced, to one Lark receiver.
type Notifier struct {
	sender        MessageSender
	receiveIDType string
	receiveID     string
	logger        *zap.Logger
}

// NewNotifier creates a Notifier. receiveIDType is chat_id, open_id, user_id or email.
func NewNotifier(sender MessageSender, receiveIDType, receiveID string, logger *zap.Logger) *Notifier {
	return &Notifier{
		sender:        sender,
		receiveIDType: receiveIDType,
		receiveID:     receiveID,
		logger:        logger,
	}
}

// NotifyRun sends the summary text and then attaches the report file when one exists.
func (n *Notifier) NotifyRun(ctx context.Context, summary, reportPath string) error {
	if _, err := n.sender.SendText(ctx, n.receiveIDType, n.receiveID, summary); err != nil {
		return fmt.Errorf("send summary: %w", err)
	}

	if reportPath == "" {
		return nil
	}

	f, err := os.Open(reportPath)
	if err != nil {
		return fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	fileKey, err := n.sender.UploadFile(ctx, filepath.Base(reportPath), reportFileType, f)
	if err != nil {
		return fmt.Errorf("upload report: %w", err)
	}

	if _, err := n.sender.SendFile(ctx, n.receiveIDType, n.receiveID, fileKey); err != nil {
		return fmt.Errorf("send report: %w", err)
	}

	n.logger.Info("Run summary sent to Lark",
		zap.String("receive_id", n.receiveID),
		zap.String("report", filepath.Base(reportPath)))
	return nil
}
