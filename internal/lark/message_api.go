package lark

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	larkim "github.com/larksuite/oapi-sdk-go/v3/service/im/v1"
	"go.uber.org/zap"
)

// Message types understood by the IM API.
const (
	MsgTypeText = "text"
	MsgTypeFile = "file"
)

// MessageAPI handles Lark messaging operations
type MessageAPI struct {
	client *Client
	logger *zap.Logger
}

// NewMessageAPI creates a new message API handler
func NewMessageAPI(client *Client, logger *zap.Logger) *MessageAPI {
	return &MessageAPI{
		client: client,
		logger: logger,
	}
}

// SendMessage sends a message to a user or group
func (m *MessageAPI) SendMessage(ctx context.Context, receiveIDType, receiveID, msgType, content string) (string, error) {
	req := larkim.NewCreateMessageReqBuilder().
		ReceiveIdType(receiveIDType).
		Body(larkim.NewCreateMessageReqBodyBuilder().
			ReceiveId(receiveID).
			MsgType(msgType).
			Content(content).
			Build()).
		Build()

	resp, err := m.client.client.Im.Message.Create(ctx, req)
	if err != nil {
		m.logger.Error("Failed to send message",
			zap.String("receive_id", receiveID),
			zap.Error(err))
		return "", fmt.Errorf("failed to send message: %w", err)
	}

	if !resp.Success() {
		m.logger.Error("API returned failure",
			zap.String("receive_id", receiveID),
			zap.Int("code", resp.Code),
			zap.String("msg", resp.Msg))
		return "", fmt.Errorf("API error: code=%d, msg=%s", resp.Code, resp.Msg)
	}

	messageID := ""
	if resp.Data != nil && resp.Data.MessageId != nil {
		messageID = *resp.Data.MessageId
	}

	m.logger.Info("Message sent successfully",
		zap.String("message_id", messageID),
		zap.String("receive_id", receiveID))

	return messageID, nil
}

// SendText sends a plain text message.
func (m *MessageAPI) SendText(ctx context.Context, receiveIDType, receiveID, text string) (string, error) {
	content, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", fmt.Errorf("failed to encode text message: %w", err)
	}
	return m.SendMessage(ctx, receiveIDType, receiveID, MsgTypeText, string(content))
}

// SendFile sends a previously uploaded file.
func (m *MessageAPI) SendFile(ctx context.Context, receiveIDType, receiveID, fileKey string) (string, error) {
	content, err := json.Marshal(map[string]string{"file_key": fileKey})
	if err != nil {
		return "", fmt.Errorf("failed to encode file message: %w", err)
	}
	return m.SendMessage(ctx, receiveIDType, receiveID, MsgTypeFile, string(content))
}

// UploadFile uploads a file for messaging and returns its file key.
// fileType is one of the IM file types, e.g. "xls" or "pdf".
func (m *MessageAPI) UploadFile(ctx context.Context, fileName, fileType string, data io.Reader) (string, error) {
	req := larkim.NewCreateFileReqBuilder().
		Body(larkim.NewCreateFileReqBodyBuilder().
			FileType(fileType).
			FileName(fileName).
			File(data).
			Build()).
		Build()

	resp, err := m.client.client.Im.File.Create(ctx, req)
	if err != nil {
		m.logger.Error("Failed to upload file",
			zap.String("file_name", fileName),
			zap.Error(err))
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	if !resp.Success() {
		m.logger.Error("API returned failure",
			zap.String("file_name", fileName),
			zap.Int("code", resp.Code),
			zap.String("msg", resp.Msg))
		return "", fmt.Errorf("API error: code=%d, msg=%s", resp.Code, resp.Msg)
	}

	if resp.Data == nil || resp.Data.FileKey == nil {
		return "", fmt.Errorf("upload of %s returned no file key", fileName)
	}

	m.logger.Info("File uploaded",
		zap.String("file_name", fileName),
		zap.String("file_key", *resp.Data.FileKey))
	return *resp.Data.FileKey, nil
}
