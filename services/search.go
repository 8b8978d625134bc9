package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/dto"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// Điểm levenshtein tối đa chấp nhận được giữa query và tên/thành phố
const maxSearchDistance = 3

// SearchService tìm khách sạn theo tên hoặc thành phố, chịu được gõ sai
// chính tả và thiếu dấu
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// normalize bỏ dấu và lowercase để so khớp không phân biệt dấu
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}

// SearchHotels tìm khách sạn khớp gần đúng với query.
// Dùng closestmatch trên bag-of-words để lấy ứng viên rồi chấm điểm
// từng khách sạn bằng levenshtein, chấm song song vì danh sách có thể dài.
func (s *SearchService) SearchHotels(ctx context.Context, query string) ([]dto.ScoredHotel, error) {
	query = normalize(query)
	if query == "" {
		return []dto.ScoredHotel{}, nil
	}

	var hotels []models.Hotel
	if err := s.db.WithContext(ctx).Find(&hotels).Error; err != nil {
		return nil, wrapStoreErr(err)
	}
	if len(hotels) == 0 {
		return []dto.ScoredHotel{}, nil
	}

	keys := make([]string, 0, len(hotels)*2)
	for _, h := range hotels {
		keys = append(keys, normalize(h.Name), normalize(h.City))
	}
	cm := closestmatch.New(keys, []int{2, 3})
	closest := cm.Closest(query)

	type scored struct {
		hotel models.Hotel
		score int
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		matches []scored
	)
	for _, h := range hotels {
		wg.Add(1)
		go func(h models.Hotel) {
			defer wg.Done()
			name := normalize(h.Name)
			city := normalize(h.City)

			score := levenshtein.DistanceForStrings([]rune(query), []rune(name), levenshtein.DefaultOptions)
			if cityScore := levenshtein.DistanceForStrings([]rune(query), []rune(city), levenshtein.DefaultOptions); cityScore < score {
				score = cityScore
			}

			// Chứa query hoặc trùng với kết quả closestmatch thì luôn nhận
			hit := strings.Contains(name, query) || strings.Contains(city, query) ||
				name == closest || city == closest
			if !hit && score > maxSearchDistance {
				return
			}

			mu.Lock()
			matches = append(matches, scored{hotel: h, score: score})
			mu.Unlock()
		}(h)
	}
	wg.Wait()

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score < matches[j].score
		}
		return matches[i].hotel.ID < matches[j].hotel.ID
	})

	result := make([]dto.ScoredHotel, 0, len(matches))
	for _, m := range matches {
		result = append(result, dto.ScoredHotel{
			Hotel: dto.HotelResponse{
				ID:      m.hotel.ID,
				Name:    m.hotel.Name,
				Address: m.hotel.Address,
				Contact: m.hotel.Contact,
				City:    m.hotel.City,
				OwnerID: m.hotel.OwnerID,
			},
			Score: m.score,
		})
	}
	return result, nil
}
