package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aarav/internal/models/request_models"
	"aarav/internal/models/response_models"
	"aarav/internal/models/trip_models"
	"aarav/internal/repositories"
	"aarav/pkg/utils"
)

// failingLLM forces every reply onto the deterministic fallback path.
type failingLLM struct{}

func (failingLLM) Complete(_ context.Context, _ []utils.ChatMessage) (string, error) {
	return "", errors.New("backend unavailable")
}

func newTestChatService() (ChatServiceInterface, repositories.SessionRepository) {
	dataset := testDataset()
	places := repositories.NewPlaceRepository(dataset.BuildPlaces())
	sessions := repositories.NewSessionRepository()

	svc := NewChatService(
		sessions,
		places,
		NewTextClassifier(),
		NewRetrievalService(dataset),
		NewItineraryService(),
		NewBudgetService(),
		NewRouteService(failingBackend{}, places),
		failingLLM{},
	)
	return svc, sessions
}

func turn(t *testing.T, svc ChatServiceInterface, sessionID, message string) response_models.ChatResponse {
	t.Helper()
	resp := svc.HandleTurn(context.Background(), request_models.ChatRequest{
		SessionID: sessionID,
		Message:   message,
	})
	require.NotEmpty(t, resp.SessionID)
	return resp
}

func hasCommand(commands []response_models.Command, cmdType string) bool {
	for _, c := range commands {
		if c.Type == cmdType {
			return true
		}
	}
	return false
}

func TestFullPlanningConversation(t *testing.T) {
	svc, _ := newTestChatService()

	resp := turn(t, svc, "", "")
	sid := resp.SessionID
	assert.Equal(t, introFallback, resp.Reply)
	assert.Equal(t, []string{"Yes", "No"}, resp.Suggestions)
	assert.Equal(t, trip_models.StageIntro, resp.TripState.Stage)

	resp = turn(t, svc, sid, "Yes")
	assert.Equal(t, trip_models.PermissionGranted, resp.TripState.Permission)
	assert.Equal(t, profileQuestions[FieldTimeDays], resp.Reply)

	resp = turn(t, svc, sid, "3 days")
	assert.Equal(t, 3, resp.TripState.Profile.TimeDays)
	assert.Equal(t, profileQuestions[FieldGroup], resp.Reply)

	resp = turn(t, svc, sid, "solo")
	require.NotNil(t, resp.TripState.Profile.Group)
	assert.Equal(t, 1, resp.TripState.Profile.Group.Count)
	assert.Equal(t, profileQuestions[FieldBudget], resp.Reply)

	// "flexible" answers nothing; the asked budget field is never re-asked.
	resp = turn(t, svc, sid, "flexible")
	assert.Equal(t, profileQuestions[FieldComfort], resp.Reply)

	resp = turn(t, svc, sid, "comfortable")
	assert.Equal(t, trip_models.ComfortMid, resp.TripState.Profile.Comfort)
	assert.Equal(t, profileQuestions[FieldPreferences], resp.Reply)

	resp = turn(t, svc, sid, "history and temples")
	assert.Equal(t, hotelQuestion, resp.Reply)
	assert.Equal(t, trip_models.StageCollectHotel, resp.TripState.Stage)

	resp = turn(t, svc, sid, "I'm staying near Boudha")
	require.NotNil(t, resp.TripState.Hotel)
	assert.Equal(t, "Boudhanath Stupa", resp.TripState.Hotel.Name)
	assert.Equal(t, trip_models.StageDaySuggest, resp.TripState.Stage)
	assert.True(t, hasCommand(resp.Commands, response_models.CommandStoreHotel))

	resp = turn(t, svc, sid, "Kathmandu Durbar Square and Swayambhunath")
	assert.Equal(t, trip_models.StageDayConfirm, resp.TripState.Stage)
	assert.Contains(t, resp.Reply, "Shall we lock in day 1?")
	assert.True(t, hasCommand(resp.Commands, response_models.CommandAddPin))
	require.Len(t, resp.TripState.Trip.Days, 1)
	assert.Equal(t, []string{"kathmandu-durbar-square", "swayambhunath-monkey-temple"},
		resp.TripState.Trip.Days[0].Visits)
	assert.Equal(t, []string{"Yes", "No"}, resp.Suggestions)

	resp = turn(t, svc, sid, "Yes")
	assert.Contains(t, resp.Reply, "Day 1 is set")
	assert.Contains(t, resp.Reply, "day 2")
	assert.True(t, hasCommand(resp.Commands, response_models.CommandStoreDay))

	resp = turn(t, svc, sid, "Boudhanath Stupa and Garden of Dreams")
	assert.Contains(t, resp.Reply, "Shall we lock in day 2?")

	resp = turn(t, svc, sid, "Yes")
	assert.Contains(t, resp.Reply, "day 3")

	resp = turn(t, svc, sid, "Patan Durbar Square")
	assert.Contains(t, resp.Reply, "Shall we lock in day 3?")

	resp = turn(t, svc, sid, "Yes")
	assert.Equal(t, trip_models.StageDone, resp.TripState.Stage)
	// mid tier, 3 days, 1 person: 3200*3 + 1500 entry fees = 11100.
	assert.Contains(t, resp.Reply, "8,880–14,430")
	assert.Contains(t, resp.Reply, "Always a range")
	assert.True(t, hasCommand(resp.Commands, response_models.CommandEnableRouteButton))
	assert.NotEmpty(t, resp.TripState.Routes)
	assert.NotEmpty(t, resp.MapActions.Routes)
}

func TestSideChannelsPreemptStateMachine(t *testing.T) {
	svc, _ := newTestChatService()

	resp := turn(t, svc, "", "")
	sid := resp.SessionID

	resp = turn(t, svc, sid, "what model are you?")
	assert.Equal(t, fallbackLines["off_topic"], resp.Reply)
	assert.Equal(t, trip_models.PermissionUnknown, resp.TripState.Permission)

	resp = turn(t, svc, sid, "tell me everything")
	assert.Equal(t, fallbackLines["too_broad"], resp.Reply)

	resp = turn(t, svc, sid, "what is the exact price of entry?")
	assert.Equal(t, fallbackLines["exact_prices"], resp.Reply)

	resp = turn(t, svc, sid, "should I go to Pokhara?")
	assert.Equal(t, otherCityReply, resp.Reply)
}

func TestDecliningKeepsInspirationMode(t *testing.T) {
	svc, _ := newTestChatService()

	resp := turn(t, svc, "", "")
	sid := resp.SessionID

	resp = turn(t, svc, sid, "No")
	assert.Equal(t, trip_models.PermissionDeclined, resp.TripState.Permission)
	assert.Equal(t, trip_models.StageInspiration, resp.TripState.Stage)

	// Extraction stays off while declined.
	resp = turn(t, svc, sid, "we have 5 days")
	assert.Equal(t, 0, resp.TripState.Profile.TimeDays)

	// An affirmative later flips into planning.
	resp = turn(t, svc, sid, "yes, let's plan")
	assert.Equal(t, trip_models.PermissionGranted, resp.TripState.Permission)
	assert.Equal(t, profileQuestions[FieldTimeDays], resp.Reply)
}

func TestDayConfirmRejectionClearsDraft(t *testing.T) {
	svc, _ := newTestChatService()

	resp := turn(t, svc, "", "")
	sid := resp.SessionID
	turn(t, svc, sid, "Yes")
	turn(t, svc, sid, "2 days solo, mid-range, history")
	turn(t, svc, sid, "I'm staying in Thamel")

	resp = turn(t, svc, sid, "Garden of Dreams")
	assert.Contains(t, resp.Reply, "Shall we lock in day 1?")

	resp = turn(t, svc, sid, "No")
	assert.Equal(t, trip_models.StageDaySuggest, resp.TripState.Stage)
	assert.Contains(t, resp.Reply, "reshape day 1")
	assert.Empty(t, resp.TripState.Trip.Days[0].Visits)
	assert.False(t, resp.TripState.Trip.Days[0].Confirmed)
}

func TestSelectPlaceMapEventTellsStory(t *testing.T) {
	svc, _ := newTestChatService()

	resp := turn(t, svc, "", "")
	sid := resp.SessionID
	turn(t, svc, sid, "Yes")

	resp = svc.HandleTurn(context.Background(), request_models.ChatRequest{
		SessionID: sid,
		MapEvent: &request_models.MapEvent{
			Type: request_models.MapEventSelectPlace,
			Name: "Garden of Dreams",
		},
	})

	// Failing generation backend falls back to the stored story.
	assert.Contains(t, resp.Reply, "Garden of Dreams")
	assert.True(t, hasCommand(resp.Commands, response_models.CommandAddPin))
	assert.True(t, hasCommand(resp.Commands, response_models.CommandZoomMap))
	require.Len(t, resp.TripState.SelectedPlaces, 1)
	assert.Equal(t, "Garden of Dreams", resp.TripState.SelectedPlaces[0].Name)
}

func TestUnknownSessionIDGetsFreshSession(t *testing.T) {
	svc, sessions := newTestChatService()

	resp := turn(t, svc, "gone-id", "")
	assert.Equal(t, "gone-id", resp.SessionID)

	s, ok := sessions.Get("gone-id")
	require.True(t, ok)
	assert.Equal(t, trip_models.StageIntro, s.Trip.Stage)
}
