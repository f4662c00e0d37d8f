package version

// VERSION is the version of the madmp toolkit.
const VERSION = "0.1.0"
