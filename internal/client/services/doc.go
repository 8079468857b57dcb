// Package services contains application services for the socialdeck client.
//
// Services sit between the CLI and the API client. They validate user
// input before any request is made, keep the stored session in step with
// login and logout, and return errors the CLI can turn into notifications:
// validation problems wrap ErrValidation, API failures keep the sentinels
// of package client.
package services
