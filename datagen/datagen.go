package datagen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/rushteam/feedkit/core"
)

// Generator 生成合成的事件/用户文档，用于填充演示与测试数据。
// 同一个 seed 生成同一份语料（ID 除外：文档 ID 用 uuid，随机源独立）。
type Generator struct {
	rng      *rand.Rand
	geocoder Geocoder
}

// GeneratorOption 是 Generator 的配置选项
type GeneratorOption func(*Generator)

// WithGeocoder 替换地理编码实现（默认 StaticGeocoder）
func WithGeocoder(g Geocoder) GeneratorOption {
	return func(gen *Generator) {
		gen.geocoder = g
	}
}

// NewGenerator 创建生成器；seed 为 0 时按当前时间播种（不可复现）。
func NewGenerator(seed int64, opts ...GeneratorOption) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		geocoder: StaticGeocoder{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Event 为指定城市/街道生成一个事件文档。
func (g *Generator) Event(city, street, creatorID string) *core.Event {
	title := g.title()
	lat, lng, ok := g.geocoder.Geocode(street, city)

	ev := &core.Event{
		ID:           uuid.NewString(),
		Title:        title,
		Header:       g.header(),
		Overview:     g.overview(),
		Description:  g.description(title),
		Category:     pick(g.rng, Categories),
		City:         city,
		Price:        g.price(),
		StreetName:   street,
		StreetNumber: fmt.Sprintf("%d", 1+g.rng.Intn(15)),
		Availability: 20 + g.rng.Intn(281),
		ImageURL:     fmt.Sprintf("https://picsum.photos/id/%d/300/200", 1+g.rng.Intn(1000)),
		CreatorID:    creatorID,
		Date:         g.futureDate(),
	}
	if ok {
		ev.Latitude = lat
		ev.Longitude = lng
		ev.Geohash = EncodeGeohash(lat, lng, 12)
	} else {
		ev.Geohash = "0"
	}
	return ev
}

// User 生成一个空交互列表的用户文档。
func (g *Generator) User() *core.UserProfile {
	username := g.username()
	u := core.NewUserProfile(uuid.NewString())
	u.Username = username
	u.Email = username + "@gmail.com"
	return u
}

// price 从价格网格中取值：0（免费，写作 "Free"）或 5..100 步长 5。
func (g *Generator) price() string {
	grid := g.rng.Intn(21) // 0..20
	if grid == 0 {
		return "Free"
	}
	return fmt.Sprintf("%.2f", float64(grid*5))
}

func (g *Generator) title() string {
	return pick(g.rng, adjectives) + " " + pick(g.rng, themes) + " " + pick(g.rng, nouns)
}

func (g *Generator) header() string {
	return pick(g.rng, actionWords) + " " + pick(g.rng, eventPhrases) + " " + pick(g.rng, specialWords)
}

func (g *Generator) overview() string {
	return pick(g.rng, overviewKeywords) + " " + pick(g.rng, overviewPhrases) + ". " + pick(g.rng, overviewSentences)
}

func (g *Generator) description(title string) string {
	return pick(g.rng, introPhrases) + " " + title + ", where you will enjoy " +
		pick(g.rng, mainContent) + " " + pick(g.rng, closingStatements)
}

func (g *Generator) username() string {
	return fmt.Sprintf("%s%s%d",
		lower(pick(g.rng, adjectives)),
		lower(pick(g.rng, themes)),
		g.rng.Intn(100),
	)
}

// futureDate 返回未来 13..365 天内的一个整刻钟时间点。
func (g *Generator) futureDate() time.Time {
	days := 13 + g.rng.Intn(353)
	hour := g.rng.Intn(24)
	minute := []int{0, 15, 30, 45}[g.rng.Intn(4)]

	t := time.Now().AddDate(0, 0, days)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, time.UTC)
}

func pick(rng *rand.Rand, list []string) string {
	return list[rng.Intn(len(list))]
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
