package constants

const (
	CookieKeyAuthToken = "auth_token"

	CtxKeyCallerID  = "caller_id"
	CtxKeyRequestID = "request_id"

	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// viper keys
const (
	ViperServerAddr        = "server.addr"
	ViperServerCORSOrigins = "server.cors_origins"
	ViperServerBodyLimit   = "server.body_limit"

	ViperDBDSN             = "db.dsn"
	ViperDBMaxConns        = "db.max_conns"
	ViperDBSchema          = "db.schema"
	ViperDBReferenceSchema = "db.reference_schema"
	ViperDBConnectTimeout  = "db.connect_timeout"

	ViperSecretKey      = "auth.secret"
	ViperAuthCookieName = "auth.cookie_name"
	ViperAuthTokenTTL   = "auth.token_ttl"

	ViperLogLevel      = "log.level"
	ViperLogFile       = "log.file"
	ViperLogMaxSizeMB  = "log.max_size_mb"
	ViperLogMaxBackups = "log.max_backups"
	ViperLogMaxAgeDays = "log.max_age_days"
)

// ReadCap is the silent upper bound on rows returned by list reads.
const ReadCap = 1000
