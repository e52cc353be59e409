package services

import (
	"sort"
	"strings"

	"roombook/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Ngưỡng tương đồng tối thiểu để một phòng được coi là khớp
const minSimilarity = 0.6

type scoredRoom struct {
	room  models.Room
	score float64
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len([]rune(a)))
	if l := float64(len([]rune(b))); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// SearchRooms lọc và sắp xếp phòng theo mức độ khớp với từ khóa.
// Từ khóa rỗng trả về nguyên danh sách.
func SearchRooms(query string, rooms []models.Room) []models.Room {
	q := normalizeInput(query)
	if q == "" {
		return rooms
	}

	keywords := make([]string, 0, len(rooms)*2)
	for _, room := range rooms {
		keywords = append(keywords, normalizeInput(room.RoomName), normalizeInput(room.RoomAddress))
	}
	closest := ""
	if len(keywords) > 0 {
		closest = closestmatch.New(keywords, []int{2, 3}).Closest(q)
	}

	var scored []scoredRoom
	for _, room := range rooms {
		name := normalizeInput(room.RoomName)
		address := normalizeInput(room.RoomAddress)

		score := calculateSimilarity(q, name)
		if s := calculateSimilarity(q, address); s > score {
			score = s
		}
		if strings.Contains(name, q) || strings.Contains(address, q) {
			score += 1
		}
		if closest != "" && (closest == name || closest == address) {
			score += 0.5
		}
		if score >= minSimilarity {
			scored = append(scored, scoredRoom{room: room, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	result := make([]models.Room, 0, len(scored))
	for _, s := range scored {
		result = append(result, s.room)
	}
	return result
}
