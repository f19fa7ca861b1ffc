package services

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"aarav/internal/models/request_models"
	"aarav/internal/models/response_models"
	"aarav/internal/models/trip_models"
	"aarav/internal/repositories"
	"aarav/pkg/utils"
)

// historyWindow is how many recent turns the generation backend sees.
const historyWindow = 8

// retrievalTopK values for the two grounding situations.
const (
	narrationTopK  = 3
	placeStoryTopK = 2
)

// ChatServiceInterface is the conversational front door: one traveler turn
// in, one assembled response out. All state lives in the session.
type ChatServiceInterface interface {
	HandleTurn(ctx context.Context, req request_models.ChatRequest) response_models.ChatResponse
}

type chatService struct {
	sessions   repositories.SessionRepository
	places     repositories.PlaceRepository
	classifier TextClassifierInterface
	retrieval  RetrievalServiceInterface
	itinerary  ItineraryServiceInterface
	budget     BudgetServiceInterface
	routes     RouteServiceInterface
	llm        utils.ChatClientInterface
}

func NewChatService(
	sessions repositories.SessionRepository,
	places repositories.PlaceRepository,
	classifier TextClassifierInterface,
	retrieval RetrievalServiceInterface,
	itinerary ItineraryServiceInterface,
	budget BudgetServiceInterface,
	routes RouteServiceInterface,
	llm utils.ChatClientInterface,
) ChatServiceInterface {
	return &chatService{
		sessions:   sessions,
		places:     places,
		classifier: classifier,
		retrieval:  retrieval,
		itinerary:  itinerary,
		budget:     budget,
		routes:     routes,
		llm:        llm,
	}
}

var titleCaser = cases.Title(language.English)

func (s *chatService) HandleTurn(ctx context.Context, req request_models.ChatRequest) response_models.ChatResponse {
	_, session := s.sessions.GetOrCreate(req.SessionID)
	t := session.Trip
	message := strings.TrimSpace(req.Message)

	var commands []response_models.Command

	// Profile extraction runs on every turn once planning is allowed.
	if message != "" && t.Permission == trip_models.PermissionGranted {
		before := t.Profile
		s.classifier.ApplyMessage(&t.Profile, message)
		if !reflect.DeepEqual(before, t.Profile) {
			commands = append(commands, response_models.Command{Type: response_models.CommandStoreProfile})
		}
	}

	var reply string
	if req.MapEvent != nil {
		reply, commands = s.handleMapEvent(ctx, session, req.MapEvent, commands)
	} else {
		reply, commands = s.handleText(ctx, session, message, commands)
	}

	if message != "" {
		session.AppendHistory(utils.RoleUser, message)
	}
	if reply != "" {
		session.AppendHistory(utils.RoleAssistant, reply)
	}
	s.sessions.Save(session)

	return s.assemble(session, reply, commands)
}

func (s *chatService) handleMapEvent(ctx context.Context, session *trip_models.Session, ev *request_models.MapEvent, commands []response_models.Command) (string, []response_models.Command) {
	t := session.Trip

	switch ev.Type {
	case request_models.MapEventSelectPlace:
		place, ok := s.places.GetByName(ev.Name)
		coords := trip_models.KathmanduCenter
		name := strings.TrimSpace(ev.Name)
		if ok {
			name, coords = place.Name, place.Coordinates
		} else if ev.Coordinates != nil {
			coords = *ev.Coordinates
		}
		if name == "" {
			name = "Selected place"
		}

		t.UpsertSelectedPlace(name, coords)
		commands = append(commands,
			response_models.Command{Type: response_models.CommandAddPin, Name: name, Coordinates: &coords},
			response_models.Command{Type: response_models.CommandZoomMap, Coordinates: &coords, Zoom: 15},
		)

		if t.Stage == trip_models.StageDaySuggest || t.Stage == trip_models.StageDayConfirm {
			if ok {
				s.itinerary.AddVisit(t, place.ID)
			}
		}

		fallback := "It's one of those places that rewards slowing down."
		if ok && place.ShortStory != "" {
			fallback = place.ShortStory
		}
		prompt := groundedUserPrompt("Tell me about "+name+" in two or three sentences.",
			s.retrieval.ContextText(name, placeStoryTopK))
		return s.llmReply(ctx, session, prompt, fallback), commands

	case request_models.MapEventSetHotel:
		coords := trip_models.KathmanduCenter
		if ev.Coordinates != nil {
			coords = *ev.Coordinates
		}
		name := strings.TrimSpace(ev.Name)
		if name == "" {
			name = "Your stay"
		}
		t.SetHotel(name, coords)
		if t.Stage == trip_models.StageCollectHotel {
			t.Stage = trip_models.StageDaySuggest
		}
		commands = append(commands,
			response_models.Command{Type: response_models.CommandStoreHotel, Name: name, Coordinates: &coords},
		)
		return fmt.Sprintf("Good — %s it is. That anchors everything.\nFor day %d, tell me one or two places that call to you, and we'll shape the day around them.",
			name, t.Trip.CurrentDay), commands

	case request_models.MapEventCreateRoute:
		if t.Hotel == nil || len(t.SelectedPlaces) == 0 {
			return "Once I know where you're staying and a place or two you like, I can draw a route between them.", commands
		}
		t.Routes = s.routes.BuildSelectionRoute(ctx, t)
		commands = append(commands, response_models.Command{Type: response_models.CommandEnableRouteButton})
		return "I've sketched the route from your stay through your picks. Roads here wander, so treat the line as a guide, not a promise.", commands
	}

	return fallbackLines["vague"], commands
}

func (s *chatService) handleText(ctx context.Context, session *trip_models.Session, message string, commands []response_models.Command) (string, []response_models.Command) {
	t := session.Trip

	if message == "" {
		if len(session.History) == 0 {
			prompt := "A traveler has just opened the chat. Greet them briefly as Aarav and ask if they would like help planning their days in the Kathmandu Valley."
			return s.llmReply(ctx, session, prompt, introFallback), commands
		}
		return fallbackLines["silent"], commands
	}

	// Side channels take precedence over the stage machine, in fixed order.
	switch {
	case s.classifier.IsOffTopic(message):
		return fallbackLines["off_topic"], commands
	case s.classifier.IsTooBroad(message):
		return fallbackLines["too_broad"], commands
	case s.classifier.AsksExactPrices(message):
		return fallbackLines["exact_prices"], commands
	case s.classifier.IsChangeOfMind(message):
		if t.Stage == trip_models.StageDaySuggest || t.Stage == trip_models.StageDayConfirm {
			s.itinerary.ClearCurrentDay(t)
		}
		return fallbackLines["changes_mind"], commands
	case s.classifier.MentionsOtherCity(message):
		return otherCityReply, commands
	}

	if t.Permission == trip_models.PermissionUnknown {
		return s.handlePermissionGate(session, message, commands)
	}

	if t.Permission == trip_models.PermissionDeclined {
		if s.classifier.IsAffirmative(message) {
			t.Permission = trip_models.PermissionGranted
			t.Stage = trip_models.StageCollectProfile
			s.classifier.ApplyMessage(&t.Profile, message)
			return s.askNextProfileField(session, ""), commands
		}
		return s.inspirationReply(ctx, session, message), commands
	}

	// Planning permission granted from here on.
	if area, ok := s.classifier.ExtractStayArea(message); ok {
		return s.handleStayArea(session, area, commands)
	}

	if s.classifier.WantsRouteBuild(message) {
		return s.handleRouteBuild(ctx, session, commands)
	}

	switch t.Stage {
	case trip_models.StageIntro, trip_models.StageCollectProfile:
		t.Stage = trip_models.StageCollectProfile
		return s.askNextProfileField(session, ""), commands

	case trip_models.StageCollectHotel:
		if matches := s.places.FindAllInText(message); len(matches) > 0 {
			return s.handleStayArea(session, matches[0].Name, commands)
		}
		return "Even a rough area helps — Thamel, Boudha, anywhere near a landmark. Where will you be sleeping?", commands

	case trip_models.StageDaySuggest:
		return s.handleDaySuggest(ctx, session, message, commands)

	case trip_models.StageDayConfirm:
		return s.handleDayConfirm(ctx, session, message, commands)

	case trip_models.StageDone:
		return s.narrate(ctx, session, message), commands
	}

	return s.narrate(ctx, session, message), commands
}

func (s *chatService) handlePermissionGate(session *trip_models.Session, message string, commands []response_models.Command) (string, []response_models.Command) {
	t := session.Trip

	switch {
	case s.classifier.IsAffirmative(message):
		t.Permission = trip_models.PermissionGranted
		t.Stage = trip_models.StageCollectProfile
		return s.askNextProfileField(session, ""), commands

	case s.classifier.IsNegative(message):
		t.Permission = trip_models.PermissionDeclined
		t.Stage = trip_models.StageInspiration
		return fallbackLines["vague"] + "\n" + s.unplannedPlacesLine(), commands

	default:
		// The traveler skipped the gate and started talking trip. Take it as
		// consent and fold whatever they said into the profile.
		t.Permission = trip_models.PermissionGranted
		t.Stage = trip_models.StageCollectProfile
		s.classifier.ApplyMessage(&t.Profile, message)
		return s.askNextProfileField(session, fallbackLines["immediate_plan"]+"\n\n"), commands
	}
}

// askNextProfileField asks the first unset, not-yet-asked field, or moves on
// to the hotel once the loop is exhausted. prefix lets callers prepend an
// acknowledgement line.
func (s *chatService) askNextProfileField(session *trip_models.Session, prefix string) string {
	t := session.Trip

	next := s.classifier.NextProfileField(t)
	if next == "" {
		t.Stage = trip_models.StageCollectHotel
		return prefix + hotelQuestion
	}
	t.MarkFieldAsked(next)
	return prefix + profileQuestions[next]
}

func (s *chatService) handleStayArea(session *trip_models.Session, area string, commands []response_models.Command) (string, []response_models.Command) {
	t := session.Trip

	name := titleCaser.String(area)
	coords := trip_models.KathmanduCenter
	if place, ok := s.places.ResolveStayArea(area); ok {
		name, coords = place.Name, place.Coordinates
	}

	t.SetHotel(name, coords)
	t.Stage = trip_models.StageDaySuggest
	commands = append(commands,
		response_models.Command{Type: response_models.CommandStoreHotel, Name: name, Coordinates: &coords},
		response_models.Command{Type: response_models.CommandAddPin, Name: name, Coordinates: &coords},
	)

	return fmt.Sprintf("Good — %s it is. That anchors everything.\nFor day %d, tell me one or two places that call to you, and we'll shape the day around them.",
		name, t.Trip.CurrentDay), commands
}

func (s *chatService) handleRouteBuild(ctx context.Context, session *trip_models.Session, commands []response_models.Command) (string, []response_models.Command) {
	t := session.Trip

	switch {
	case s.itinerary.HasBuildableTrip(t):
		t.Routes = s.routes.BuildDayRoutes(ctx, t)
		commands = append(commands, response_models.Command{Type: response_models.CommandEnableRouteButton})
		return "Done — I've drawn each confirmed day as its own route from your stay. The lines follow real roads where I could find them.", commands

	case t.Hotel != nil && len(t.SelectedPlaces) > 0:
		t.Routes = s.routes.BuildSelectionRoute(ctx, t)
		commands = append(commands, response_models.Command{Type: response_models.CommandEnableRouteButton})
		return "I've sketched the route from your stay through your picks. Roads here wander, so treat the line as a guide, not a promise.", commands

	default:
		return "Once I know where you're staying and a place or two you like, I can draw a route between them.", commands
	}
}

func (s *chatService) handleDaySuggest(ctx context.Context, session *trip_models.Session, message string, commands []response_models.Command) (string, []response_models.Command) {
	t := session.Trip
	day := s.itinerary.CurrentDay(t)

	matches := s.places.FindAllInText(message)
	if len(matches) == 0 {
		if s.classifier.IsAffirmative(message) && len(day.Visits) > 0 {
			return s.confirmDay(ctx, session, commands)
		}
		if s.classifier.IsVagueOrConfused(message) {
			return fallbackLines["vague"], commands
		}
		return s.narrate(ctx, session, message), commands
	}

	var added []string
	full := false
	for _, place := range matches {
		switch s.itinerary.AddVisit(t, place.ID) {
		case VisitAdded:
			t.UpsertSelectedPlace(place.Name, place.Coordinates)
			coords := place.Coordinates
			commands = append(commands,
				response_models.Command{Type: response_models.CommandAddPin, Name: place.Name, Coordinates: &coords})
			added = append(added, place.Name)
		case DayFull:
			full = true
		}
	}

	t.Stage = trip_models.StageDayConfirm

	var sb strings.Builder
	sb.WriteString(s.itinerary.DayPreview(day, s.dayVisitPlaces(t)))
	sb.WriteString("\n")
	if full && len(added) == 0 {
		sb.WriteString("Two places a day is the honest pace here. Let's not stack more on it.\n")
	}
	fmt.Fprintf(&sb, "Shall we lock in day %d?", day.Index)
	return sb.String(), commands
}

func (s *chatService) handleDayConfirm(ctx context.Context, session *trip_models.Session, message string, commands []response_models.Command) (string, []response_models.Command) {
	t := session.Trip

	switch {
	case s.classifier.IsAffirmative(message):
		return s.confirmDay(ctx, session, commands)

	case s.classifier.IsNegative(message):
		day := s.itinerary.CurrentDay(t)
		s.itinerary.ClearCurrentDay(t)
		t.Stage = trip_models.StageDaySuggest
		return fmt.Sprintf("No problem — let's reshape day %d. Which places feel right instead?", day.Index), commands
	}

	if matches := s.places.FindAllInText(message); len(matches) > 0 {
		t.Stage = trip_models.StageDaySuggest
		return s.handleDaySuggest(ctx, session, message, commands)
	}
	return s.narrate(ctx, session, message), commands
}

func (s *chatService) confirmDay(ctx context.Context, session *trip_models.Session, commands []response_models.Command) (string, []response_models.Command) {
	t := session.Trip
	day := s.itinerary.CurrentDay(t)
	s.itinerary.ConfirmCurrentDay(t)
	commands = append(commands, response_models.Command{Type: response_models.CommandStoreDay, Day: day.Index})

	if s.itinerary.IsComplete(t) {
		t.Stage = trip_models.StageDone
		t.Routes = s.routes.BuildDayRoutes(ctx, t)
		commands = append(commands, response_models.Command{Type: response_models.CommandEnableRouteButton})

		summary := s.budget.FormatSummary(s.budget.Estimate(t.Profile))
		return fmt.Sprintf("That completes your %d day(s) — a plan with room to breathe.\n\n%s\n\nWhen you're ready, I can hand you map links for each day.",
			t.Profile.TimeDays, summary), commands
	}

	t.Stage = trip_models.StageDaySuggest
	return fmt.Sprintf("Day %d is set. Now for day %d — which places are calling?",
		day.Index, t.Trip.CurrentDay), commands
}

func (s *chatService) inspirationReply(ctx context.Context, session *trip_models.Session, message string) string {
	prompt := groundedUserPrompt(message, s.retrieval.ContextText(message, narrationTopK))
	return s.llmReply(ctx, session, prompt, s.unplannedPlacesLine())
}

func (s *chatService) narrate(ctx context.Context, session *trip_models.Session, message string) string {
	if s.classifier.IsVagueOrConfused(message) {
		return fallbackLines["vague"]
	}
	contextText := s.retrieval.ContextText(message, narrationTopK)
	fallback := fallbackLines["vague"]
	if docs := s.retrieval.Retrieve(message, 1); len(docs) > 0 {
		fallback = docs[0].Text
	}
	return s.llmReply(ctx, session, groundedUserPrompt(message, contextText), fallback)
}

// unplannedPlacesLine names a couple of POIs without committing to a plan.
func (s *chatService) unplannedPlacesLine() string {
	places := s.places.List()
	if len(places) == 0 {
		return "When something catches your eye, just name it and I'll tell you its story."
	}
	names := make([]string, 0, 2)
	for _, p := range places {
		names = append(names, p.Name)
		if len(names) == 2 {
			break
		}
	}
	return fmt.Sprintf("If you'd rather wander first, %s usually leave the strongest impression. Ask me about either.",
		strings.Join(names, " and "))
}

func (s *chatService) dayVisitPlaces(t *trip_models.TripState) []trip_models.Place {
	day := s.itinerary.CurrentDay(t)
	visits := make([]trip_models.Place, 0, len(day.Visits))
	for _, id := range day.Visits {
		if p, ok := s.places.GetByID(id); ok {
			visits = append(visits, p)
		}
	}
	return visits
}

func (s *chatService) llmReply(ctx context.Context, session *trip_models.Session, userPrompt, fallback string) string {
	messages := []utils.ChatMessage{{
		Role:    utils.RoleSystem,
		Content: systemPrompt + "\n\nCurrent trip state: " + session.Trip.CompactJSON(),
	}}
	for _, turn := range session.RecentHistory(historyWindow) {
		messages = append(messages, utils.ChatMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, utils.ChatMessage{Role: utils.RoleUser, Content: userPrompt})

	out, err := s.llm.Complete(ctx, messages)
	if err != nil || strings.TrimSpace(out) == "" {
		return fallback
	}
	return strings.TrimSpace(out)
}

func (s *chatService) assemble(session *trip_models.Session, reply string, commands []response_models.Command) response_models.ChatResponse {
	t := session.Trip

	markers := make([]response_models.Marker, 0, len(t.SelectedPlaces)+1)
	if t.Hotel != nil {
		markers = append(markers, response_models.Marker{
			Type: "hotel", Name: t.Hotel.Name, Coordinates: t.Hotel.Coordinates,
		})
	}
	for _, pin := range t.SelectedPlaces {
		markers = append(markers, response_models.Marker{
			Type: "place", Name: pin.Name, Coordinates: pin.Coordinates,
		})
	}

	return response_models.ChatResponse{
		SessionID: session.ID,
		Reply:     reply,
		Commands:  commands,
		TripState: t,
		MapActions: response_models.MapActions{
			Center:  trip_models.KathmanduCenter,
			Zoom:    13,
			Markers: markers,
			Routes:  t.Routes,
		},
		Suggestions: suggestedReplies(t, s.places),
	}
}
