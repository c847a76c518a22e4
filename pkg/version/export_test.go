package version

var ResolveFrom = resolveFrom
