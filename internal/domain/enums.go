package domain

// ActivityType classifies an activity record.
type ActivityType string

const (
	ActivityTypeWeightLifting  ActivityType = "WeightLifting"
	ActivityTypeWalking        ActivityType = "Walking"
	ActivityTypeJogging        ActivityType = "Jogging"
	ActivityTypeRunning        ActivityType = "Running"
	ActivityTypeCycling        ActivityType = "Cycling"
	ActivityTypeEbike          ActivityType = "Ebike"
	ActivityTypeMountainBiking ActivityType = "MountainBiking"
	ActivityTypeOther          ActivityType = "Other"
)

func (t ActivityType) String() string { return string(t) }

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeWeightLifting, ActivityTypeWalking, ActivityTypeJogging, ActivityTypeRunning,
		ActivityTypeCycling, ActivityTypeEbike, ActivityTypeMountainBiking, ActivityTypeOther:
		return true
	}
	return false
}

// AssignmentKind names the rating scale an assignment belongs to.
type AssignmentKind string

const (
	AssignmentKindMood   AssignmentKind = "mood"
	AssignmentKindEnergy AssignmentKind = "energy"
	AssignmentKindSleep  AssignmentKind = "sleep"
)

// AssignmentKinds lists every kind in processing order.
var AssignmentKinds = []AssignmentKind{AssignmentKindMood, AssignmentKindEnergy, AssignmentKindSleep}

func (k AssignmentKind) String() string { return string(k) }

func (k AssignmentKind) IsValid() bool {
	switch k {
	case AssignmentKindMood, AssignmentKindEnergy, AssignmentKindSleep:
		return true
	}
	return false
}
