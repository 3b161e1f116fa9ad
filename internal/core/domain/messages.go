package domain

// Тексты уведомлений, общие для ядра и оболочки.
const (
	MsgEnterCredentials     = "Please enter email and password"
	MsgInvalidCredentials   = "Invalid credentials"
	MsgLoggedIn             = "Logged in successfully"
	MsgSessionExpiredTitle  = "Session Expired"
	MsgSessionExpired       = "Please login again"
	MsgEnterNamePhone       = "Please enter your name and phone number"
	MsgVisitSubmitted       = "Your visit request has been submitted!"
	MsgVisitFailed          = "Failed to submit visit request"
	MsgLoadDetailsFailed    = "Failed to load property details"
	MsgPublished            = "Property published successfully!"
	MsgPublishFailed        = "Failed to publish property"
	MsgUpdated              = "Property updated successfully!"
	MsgUpdateFailed         = "Failed to update property"
	MsgConfirmDelete        = "Are you sure you want to delete this property?"
	MsgDeleted              = "Property deleted successfully"
	MsgDeleteFailed         = "Failed to delete property. Please try again."
	MsgLeadUpdated          = "Lead status updated"
	MsgLeadUpdateFailed     = "Failed to update lead status"
	MsgWhatsAppUnavailable  = "Could not open WhatsApp. Please make sure WhatsApp is installed."
	MsgMapOpenFailed        = "Failed to open map. Please try again."
	MsgEmailUnavailable     = "Could not open email app"
	MsgSMSUnavailable       = "Could not open SMS app"
	MsgNoPropertiesFound    = "No properties found"
	MsgNoMappableProperties = "No properties with location data available"
	MsgMapWebFallback       = "Interactive map with property pins is available on mobile devices."

	TitleFeatured      = "Featured Properties"
	TitleSearchResults = "Search Results"
)
