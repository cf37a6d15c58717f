// Package repository provides the in-memory store of per-chat menu states.
// States live for the process lifetime and are not persisted.
package repository

import (
	"sync"

	"uk-assist-bot/internal/tg_bot/models"
)

// ChatStates manages the menu state of bot users in memory.
type ChatStates struct {
	states map[int64]*models.ChatState // In-memory store of chat states by chat ID.
	mu     *sync.RWMutex               // Protects states from concurrent access
}

// NewChatStates creates a new ChatStates instance with an empty buffer.
func NewChatStates() *ChatStates {
	return &ChatStates{
		states: make(map[int64]*models.ChatState),
		mu:     &sync.RWMutex{},
	}
}

// GetMenu returns the current menu of the chat. A chat not seen before is in
// the main menu.
func (m *ChatStates) GetMenu(chatID int64) models.Menu {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.states[chatID]
	if !ok {
		return models.MenuMain
	}
	return state.Menu
}

// SetMenu stores the menu for the chat, creating the state on first use.
func (m *ChatStates) SetMenu(chatID int64, menu models.Menu) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.states[chatID]
	if !ok {
		m.states[chatID] = &models.ChatState{ChatID: chatID, Menu: menu}
		return
	}
	state.Menu = menu
}
