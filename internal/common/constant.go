package common

// CredentialKey is the fixed key under which the bearer token is persisted
// in the local credentials store.
const CredentialKey = "jwt-token"

// AuthorizationHeader carries the bearer token on outbound requests.
const AuthorizationHeader = "Authorization"
