// Package services holds the business logic behind the HTTP controllers.
//
// Services defined in this package:
// - AuthService: registration, login and logout over server-side sessions
// - ProfileService: profile reads in view and edit mode, personal information updates
// - ResourceService: adding and deleting education, career, skill, interest and expertise entries
package services
