package models

import "errors"

type Config struct {
	PageCount        int    `json:"page_count"`
	PageSize         int    `json:"page_size"`
	FrameCount       int    `json:"frame_count"`
	FrameSize        int    `json:"frame_size"`
	TlbEntries       int    `json:"tlb_entries"`
	BackingStorePath string `json:"backing_store_path"`
	MaxAddresses     int    `json:"max_addresses"`
	LogLevel         string `json:"log_level"`
}

var MmuConfig *Config

// DEFINICION DE ERRORES
var ErrMemoryFull = errors.New("memory full")
var ErrInvalidAddress = errors.New("invalid physical address")
var ErrPageOutOfRange = errors.New("page out of range")
