package trip_models

// UIStage is the conversational phase of a trip. Transitions are owned by the
// chat service; nothing else should write it.
type UIStage string

const (
	StageIntro          UIStage = "intro"
	StageInspiration    UIStage = "inspiration"
	StageCollectProfile UIStage = "collect_profile"
	StageCollectHotel   UIStage = "collect_hotel"
	StageDaySuggest     UIStage = "day_suggest"
	StageDayConfirm     UIStage = "day_confirm"
	StageDone           UIStage = "done"
)

// PlanningPermission tracks whether the traveler has agreed to guided
// planning. Declined is not terminal: a later "yes" flips it to granted.
type PlanningPermission string

const (
	PermissionUnknown  PlanningPermission = "unknown"
	PermissionGranted  PlanningPermission = "granted"
	PermissionDeclined PlanningPermission = "declined"
)
