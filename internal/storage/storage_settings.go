package storage

import "time"

// Prefix returns the guild's command prefix.
func (s *Storage) Prefix(guildID string) (string, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return "", err
	}
	return record.Prefix, nil
}

// SetPrefix replaces the guild's command prefix.
func (s *Storage) SetPrefix(guildID, prefix string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Prefix = prefix
	s.saveGuildRecord(guildID, record)
	return nil
}

// Starboard returns the guild's starboard configuration.
func (s *Storage) Starboard(guildID string) (StarboardConfig, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return StarboardConfig{}, err
	}
	return record.Starboard, nil
}

// SetStarboard replaces the guild's starboard configuration.
func (s *Storage) SetStarboard(guildID string, cfg StarboardConfig) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Starboard = cfg
	s.saveGuildRecord(guildID, record)
	return nil
}

// AddCommandHistoryRecord appends an executed command to the guild's rolling
// history, trimming it to the retention limit.
func (s *Storage) AddCommandHistoryRecord(guildID, channelID, userID, username, command string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.CommandsHistoryList = append(record.CommandsHistoryList, CommandHistoryRecord{
		ChannelID: channelID,
		UserID:    userID,
		Username:  username,
		Command:   command,
		Datetime:  time.Now(),
	})
	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}

	s.saveGuildRecord(guildID, record)
	return nil
}

// CommandHistory returns the guild's recent command invocations, newest last.
func (s *Storage) CommandHistory(guildID string) ([]CommandHistoryRecord, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.CommandsHistoryList, nil
}
