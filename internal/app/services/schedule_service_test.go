package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rakibul/unibus/internal/app/models"
	"github.com/rakibul/unibus/internal/app/models/dto"
)

func sampleSchedules() []*models.BusSchedule {
	return []*models.BusSchedule{
		{
			ID:            1,
			Time:          "07:00 AM",
			StartingPoint: "Dhanmondi",
			Route:         "Dhanmondi - Sobhanbagh - Campus",
			EndPoint:      "Main Campus",
			Direction:     models.DirectionCityToCampus,
			ScheduleType:  models.ScheduleTypeRegular,
		},
		{
			ID:            2,
			Time:          "07:30 AM",
			StartingPoint: "Uttara",
			Route:         "Uttara - Mirpur 10 - Campus",
			EndPoint:      "Main Campus",
			Direction:     models.DirectionCityToCampus,
			ScheduleType:  models.ScheduleTypeRegular,
		},
		{
			ID:            3,
			Time:          "09:00 AM",
			StartingPoint: "Dhanmondi",
			Route:         "Dhanmondi - Campus",
			EndPoint:      "Main Campus",
			Direction:     models.DirectionCityToCampus,
			ScheduleType:  models.ScheduleTypeFriday,
		},
		{
			ID:            4,
			Time:          "05:00 PM",
			StartingPoint: "Main Campus",
			Route:         "Campus - Dhanmondi",
			EndPoint:      "Dhanmondi",
			Direction:     models.DirectionCampusToCity,
			ScheduleType:  models.ScheduleTypeFriday,
		},
	}
}

func TestFilterSchedulesFridayCategoryReturnsOnlyFriday(t *testing.T) {
	filtered := FilterSchedules(sampleSchedules(), "", models.CategoryFriday)

	assert.Len(t, filtered, 2)
	for _, s := range filtered {
		assert.Equal(t, models.ScheduleTypeFriday, s.ScheduleType)
	}
}

func TestFilterSchedulesRegularCategoryReturnsOnlyRegular(t *testing.T) {
	filtered := FilterSchedules(sampleSchedules(), "", models.CategoryRegular)

	assert.Len(t, filtered, 2)
	for _, s := range filtered {
		assert.Equal(t, models.ScheduleTypeRegular, s.ScheduleType)
	}
}

func TestFilterSchedulesAllCategoryReturnsEverything(t *testing.T) {
	schedules := sampleSchedules()
	filtered := FilterSchedules(schedules, "", models.CategoryAll)

	assert.Len(t, filtered, len(schedules))
}

func TestFilterSchedulesQueryIsCaseInsensitive(t *testing.T) {
	filtered := FilterSchedules(sampleSchedules(), "UTTARA", models.CategoryAll)

	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(2), filtered[0].ID)
}

func TestFilterSchedulesQueryMatchesSubstring(t *testing.T) {
	// "mirpur" only appears in the middle of one route
	filtered := FilterSchedules(sampleSchedules(), "mirpur", models.CategoryAll)

	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(2), filtered[0].ID)
}

func TestFilterSchedulesQueryMatchesTimeField(t *testing.T) {
	filtered := FilterSchedules(sampleSchedules(), "05:00", models.CategoryAll)

	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(4), filtered[0].ID)
}

func TestFilterSchedulesQueryAndCategoryIntersect(t *testing.T) {
	// "dhanmondi" matches schedules 1, 3 and 4; friday narrows to 3 and 4
	filtered := FilterSchedules(sampleSchedules(), "dhanmondi", models.CategoryFriday)

	assert.Len(t, filtered, 2)
	for _, s := range filtered {
		assert.Equal(t, models.ScheduleTypeFriday, s.ScheduleType)
	}
}

func TestFilterSchedulesNoMatchReturnsEmptyNotNil(t *testing.T) {
	filtered := FilterSchedules(sampleSchedules(), "nonexistent stop", models.CategoryAll)

	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestFilterSchedulesBlankQueryIsIgnored(t *testing.T) {
	filtered := FilterSchedules(sampleSchedules(), "   ", models.CategoryAll)

	assert.Len(t, filtered, 4)
}

func TestMatchesQueryChecksAllFourFields(t *testing.T) {
	s := &models.BusSchedule{
		Time:          "07:00 AM",
		StartingPoint: "Dhanmondi",
		Route:         "Dhanmondi - Campus",
		EndPoint:      "Main Campus",
	}

	assert.True(t, MatchesQuery(s, "07:00"))
	assert.True(t, MatchesQuery(s, "dhanmondi"))
	assert.True(t, MatchesQuery(s, "- campus"))
	assert.True(t, MatchesQuery(s, "main"))
	assert.False(t, MatchesQuery(s, "uttara"))
}

func TestCategoryScheduleType(t *testing.T) {
	assert.Equal(t, models.ScheduleTypeRegular, CategoryScheduleType(models.CategoryRegular))
	assert.Equal(t, models.ScheduleTypeFriday, CategoryScheduleType(models.CategoryFriday))
	assert.Equal(t, models.ScheduleType(""), CategoryScheduleType(models.CategoryAll))
}

func TestListingFilterNarrowsByCategory(t *testing.T) {
	filter := listingFilter(dto.ScheduleListQuery{Category: "friday", Direction: "CITY_TO_CAMPUS"})
	assert.Equal(t, models.ScheduleTypeFriday, filter.ScheduleType)
	assert.Equal(t, models.DirectionCityToCampus, filter.Direction)

	filter = listingFilter(dto.ScheduleListQuery{Category: "regular"})
	assert.Equal(t, models.ScheduleTypeRegular, filter.ScheduleType)
	assert.Equal(t, models.Direction(""), filter.Direction)
}

func TestListingFilterEmptyCategoryFetchesEverything(t *testing.T) {
	for _, category := range []string{"", "all"} {
		filter := listingFilter(dto.ScheduleListQuery{Category: category})
		assert.Equal(t, models.ScheduleType(""), filter.ScheduleType, "category %q", category)
	}
}
