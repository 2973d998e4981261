package apierrors

const (
	MsgInvalidTaskPayload   = "invalidTaskPayload"
	MsgInvalidTaskID        = "invalidTaskID"
	MsgInvalidDate          = "invalidDate"
	MsgTaskNotFound         = "taskNotFound"
	MsgTaskAccessDenied     = "taskAccessDenied"
	MsgFailCreateTask       = "failCreateTask"
	MsgFailGetSchedule      = "failGetSchedule"
	MsgFailCompleteTask     = "failCompleteTask"
	MsgFailCancelCompletion = "failCancelCompletion"
	MsgFailDeleteTask       = "failDeleteTask"

	MsgInvalidAuthPayload = "invalidAuthPayload"
	MsgDuplicateEmail     = "duplicateEmail"
	MsgInvalidCredentials = "invalidCredentials"
	MsgLoginRequired      = "loginRequired"
	MsgInvalidToken       = "invalidToken"
	MsgFailSignup         = "failSignup"
	MsgFailLogin          = "failLogin"
)
