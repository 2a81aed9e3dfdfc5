package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sema-licenca/internal/config"
)

// BlockchainService registers process snapshots on the Continuus
// blockchain gateway
type BlockchainService struct {
	cfg    config.BlockchainConfig
	client *http.Client
}

// NewBlockchainService creates a new blockchain service
func NewBlockchainService(cfg config.BlockchainConfig) *BlockchainService {
	return &BlockchainService{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BlockField is one name/value pair recorded in the block
type BlockField struct {
	NmField string `json:"NmField"`
	DsValue string `json:"DsValue"`
}

// RegisterInput is the upstream block-registration payload. The field
// names follow the Continuus API contract.
type RegisterInput struct {
	IDBlockchain int          `json:"IdBlockchain"`
	Data         any          `json:"Data"`
	Fields       []BlockField `json:"Fields"`
}

// Register posts the block to the upstream gateway and returns its
// status and raw body untouched
func (s *BlockchainService) Register(ctx context.Context, input *RegisterInput) (int, []byte, error) {
	if input.IDBlockchain == 0 {
		input.IDBlockchain = s.cfg.IDBlockchain
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to encode block payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL+"/api/Block/Register", bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("dsKey", s.cfg.DsKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("blockchain gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}
