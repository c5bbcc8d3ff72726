package service

import (
	"context"
	"fmt"

	"ilo_monitor/internal/ribcl"
)

type InventoryService struct {
	ctrl Controller
}

func NewInventoryService(ctrl Controller) *InventoryService {
	return &InventoryService{ctrl: ctrl}
}

func (s *InventoryService) Firmware(ctx context.Context) (*ribcl.Firmware, error) {
	fw, err := s.ctrl.Firmware(ctx)
	if err != nil {
		return nil, fmt.Errorf("read firmware: %w", err)
	}
	return fw, nil
}

func (s *InventoryService) Health(ctx context.Context) (*ribcl.Health, error) {
	h, err := s.ctrl.Health(ctx)
	if err != nil {
		return nil, fmt.Errorf("read embedded health: %w", err)
	}
	return h, nil
}

func (s *InventoryService) Network(ctx context.Context) (*ribcl.NetworkSettings, error) {
	n, err := s.ctrl.Network(ctx)
	if err != nil {
		return nil, fmt.Errorf("read network settings: %w", err)
	}
	return n, nil
}

func (s *InventoryService) ServerName(ctx context.Context) (string, error) {
	name, err := s.ctrl.ServerName(ctx)
	if err != nil {
		return "", fmt.Errorf("read server name: %w", err)
	}
	return name, nil
}

type ControllerLogService struct {
	ctrl Controller
}

func NewControllerLogService(ctrl Controller) *ControllerLogService {
	return &ControllerLogService{ctrl: ctrl}
}

// Events returns the classified controller event log.
func (s *ControllerLogService) Events(ctx context.Context) (ribcl.LogResult, error) {
	return s.ctrl.EventLog(ctx)
}
