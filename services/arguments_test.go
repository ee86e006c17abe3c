package services

import (
	"reflect"
	"testing"

	"deal-checker/models"
)

func TestTagArguments(t *testing.T) {
	got := TagArguments([]string{
		"Depreciation: 2 years old",
		"Random note",
		"Equipment: no navigation",
		"Market: 40 similar offers",
		"Market trend mentions Depreciation",
	})
	want := []models.TaggedArgument{
		{Icon: "📉", Text: " 2 years old"},
		{Icon: "➤", Text: "Random note"},
		{Icon: "🛠", Text: " no navigation"},
		{Icon: "📊", Text: " 40 similar offers"},
		{Icon: "📉", Text: "Market trend mentions Depreciation"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagArguments:\n got  %#v\n want %#v", got, want)
	}
}

func TestTagArgumentsEmpty(t *testing.T) {
	got := TagArguments(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("TagArguments(nil) = %#v; want empty, non-nil slice", got)
	}
}
