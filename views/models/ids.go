package models

// Element IDs shared by the page shells and the browser controller.
const (
	IDNotificationCount = "notificationCount"

	IDSchemeForm        = "schemeForm"
	IDSchemeTitle       = "schemeTitle"
	IDSchemeDescription = "schemeDescription"
	IDFormResult        = "formResult"
	IDTrainModelBtn     = "trainModelBtn"
	IDTrainingResult    = "trainingResult"

	IDSchemesContainer = "schemesContainer"
	IDCategoryFilter   = "categoryFilter"

	IDNotificationsList = "notificationsList"
)
