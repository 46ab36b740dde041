/*
Package app initializes and manages a reply web application with sane defaults.

The main entrypoint to package app is the [App] type.
An [App] ought to be constructed with [New];
any component not supplied through an [Option] is built from defaults,
so the zero configuration `app.New()` produces a working application.

[*App.Start] begins the web server.
By default it listens on localhost:3000,
assuming either a reverse proxy proxies requests
or only a client application makes direct requests to the web server.

Upon calling [*App.Start], all routes configured up to that point are now active.
Stop the web server with [*App.Shutdown],
call the context.CancelFunc returned by [*App.Cancel],
or send a signal [*App.Start] listens for.

# Configuration

A developer configures an application through environment variables
and through the Options passed to [New].

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from;
cf. [reply.LoadEnvFile].

Here are the available environment variables.
  - APP_TITLE: a short title for the application, used to name the session cookie
  - BASE_URL: the base URL the application runs on; default: http://localhost:3000
  - CONTACT_US_EMAIL: the email address shown to end users when a request fails
  - ENVIRONMENT: the environment the application is running in; cf. [reply.Environment]
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :3000
  - SENTRY_DSN: the DSN error logs ship to; cf. [logger.New]
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - SESSION_AUTH_KEY: a hex-encoded key for authenticating cookies; cf. [encoding/hex]
  - SESSION_ENCRYPTION_KEY: a hex-encoded key for encrypting cookies; cf. [encoding/hex]
*/
package app
