package corpus

import (
	"reflect"
	"testing"
)

func TestTagCategory(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Category
	}{
		{
			name: "educational keyword",
			text: "Интересный факт про ароматы свечей",
			want: CategoryEducational,
		},
		{
			name: "seasonal keyword",
			text: "Новый год скоро! Новогоднее настроение",
			want: CategorySeasonal,
		},
		{
			name: "fragrance keyword",
			text: "Этот запах невозможно забыть",
			want: CategoryFragrance,
		},
		{
			name: "decor keyword",
			text: "Сухоцветы и камни в каждой свече",
			want: CategoryDecor,
		},
		{
			name: "commercial keyword",
			text: "Заказ готов, цена 1500р",
			want: CategoryCommercial,
		},
		{
			name: "process keyword",
			text: "Как мы изготовляем свечи",
			want: CategoryProcess,
		},
		{
			name: "no keywords falls back to general",
			text: "Доброе утро всем",
			want: CategoryGeneral,
		},
		{
			name: "educational wins over commercial by priority",
			text: "Интересный факт: цена воска выросла, заказ подорожал",
			want: CategoryEducational,
		},
		{
			name: "seasonal wins over fragrance by priority",
			text: "Новогодние ароматы уже здесь",
			want: CategorySeasonal,
		},
		{
			name: "keyword embedded in word",
			text: "Перезаказывайте смело",
			want: CategoryCommercial,
		},
		{
			name: "uppercase text is lowercased first",
			text: "ИНТЕРЕСНЫЙ ФАКТ",
			want: CategoryEducational,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tag(tt.text).Category
			if got != tt.want {
				t.Errorf("Tag(%q).Category = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTagCategoryIsStable(t *testing.T) {
	text := "Интересный факт про ароматы"
	first := Tag(text).Category
	for i := 0; i < 5; i++ {
		if got := Tag(text).Category; got != first {
			t.Fatalf("Tag is not stable: got %q then %q", first, got)
		}
	}
}

func TestTagTopicsNonExclusive(t *testing.T) {
	md := Tag("Аромат парфюма и натуральный декор из сухоцветов")
	want := []string{"ароматы", "декор", "материалы"}
	if !reflect.DeepEqual(md.Topics, want) {
		t.Errorf("Topics = %v, want %v", md.Topics, want)
	}
}

func TestTagTopicsEmpty(t *testing.T) {
	md := Tag("Просто хорошего дня")
	if len(md.Topics) != 0 {
		t.Errorf("Topics = %v, want empty", md.Topics)
	}
}

func TestTagSeason(t *testing.T) {
	tests := []struct {
		text string
		want Season
	}{
		{"Рождественская коллекция", SeasonWinter},
		{"8 марта дарим скидки", SeasonSpring},
		{"Летние вечера на балконе", SeasonSummer},
		{"Осенний уют", SeasonAutumn},
		{"Про свечи вообще", SeasonNone},
		// winter outranks spring when both match
		{"Новогодняя весна", SeasonWinter},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Tag(tt.text).Season; got != tt.want {
				t.Errorf("Season = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTagTextProperties(t *testing.T) {
	md := Tag("Свечи 🕯 ручной работы #handmade")
	if !md.HasEmoji {
		t.Error("HasEmoji = false, want true")
	}
	if !md.HasHashtag {
		t.Error("HasHashtag = false, want true")
	}

	plain := Tag("Свечи ручной работы")
	if plain.HasEmoji {
		t.Error("HasEmoji = true for plain text")
	}
	if plain.HasHashtag {
		t.Error("HasHashtag = true for plain text")
	}

	if got := Tag("абв").LengthChars; got != 3 {
		t.Errorf("LengthChars = %d, want 3 (runes, not bytes)", got)
	}
}
