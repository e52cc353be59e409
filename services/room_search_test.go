package services

import (
	"testing"

	"roombook/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "phong huong bien", normalizeInput("  Phòng Hướng Biển "))
	assert.Equal(t, "da nang", normalizeInput("Đà Nẵng"))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("", ""))
	assert.Equal(t, 1.0, calculateSimilarity("suite", "suite"))
	assert.InDelta(t, 0.6, calculateSimilarity("suite", "suits"), 0.001)
	assert.Less(t, calculateSimilarity("suite", "garage"), 0.6)
}

func TestSearchRooms(t *testing.T) {
	rooms := []models.Room{
		{RoomID: 0, RoomName: "Garden Suite", RoomAddress: "Hà Nội"},
		{RoomID: 1, RoomName: "Phòng Hướng Biển", RoomAddress: "Đà Nẵng"},
		{RoomID: 2, RoomName: "Penthouse", RoomAddress: "Sài Gòn"},
	}

	assert.Equal(t, rooms, SearchRooms("   ", rooms))

	result := SearchRooms("da nang", rooms)
	if assert.NotEmpty(t, result) {
		assert.Equal(t, uint64(1), result[0].RoomID)
	}

	result = SearchRooms("penthuose", rooms)
	if assert.NotEmpty(t, result) {
		assert.Equal(t, uint64(2), result[0].RoomID)
	}

	assert.Empty(t, SearchRooms("xyzxyzxyzxyz", rooms))
	assert.Empty(t, SearchRooms("suite", nil))
}
