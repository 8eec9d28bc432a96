package config

// RegisterValidations exposes registerValidations for tests.
var RegisterValidations = registerValidations
