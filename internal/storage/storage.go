package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const commandHistoryLimit = 20

// DefaultPrefix is the command prefix guilds start with.
const DefaultPrefix = "cj!"

// Storage persists per-guild settings through the JSON datastore.
type Storage struct {
	ds *datastore.DataStore
}

// StarboardConfig is a guild's starboard setup.
type StarboardConfig struct {
	Enabled   bool   `json:"enabled"`
	ChannelID string `json:"channel_id"`
	Threshold int    `json:"threshold"`
}

// CommandHistoryRecord is one executed command, kept for the log view.
type CommandHistoryRecord struct {
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Command   string    `json:"command"`
	Datetime  time.Time `json:"datetime"`
}

// Record is everything stored for one guild.
type Record struct {
	Prefix              string                 `json:"prefix"`
	Starboard           StarboardConfig        `json:"starboard"`
	CommandsHistoryList []CommandHistoryRecord `json:"cmd_history"`
}

// New opens (or creates) the datastore file at filePath.
func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

// Close flushes and closes the underlying datastore.
func (s *Storage) Close() error {
	return s.ds.Close()
}

// getOrCreateGuildRecord returns the guild's record, creating a default one
// on first access.
func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		record := &Record{Prefix: DefaultPrefix}
		s.ds.Add(guildID, record)
		return record, nil
	}

	// The datastore hands back generic JSON values; round-trip into the
	// typed record.
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}
	if record.Prefix == "" {
		record.Prefix = DefaultPrefix
	}
	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}
	return &record, nil
}

func (s *Storage) saveGuildRecord(guildID string, record *Record) {
	s.ds.Add(guildID, record)
}
