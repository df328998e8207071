package path2map

// LegalNotice provides license notices for path2map itself and any third-party
// dependencies.
const LegalNotice = `path2map

Licensed under the terms of the MIT License. A copy of this license can be found
online at https://opensource.org/licenses/MIT.


================================================================================
path2map depends on the following third-party software:
================================================================================

Go, the Go standard library, and the Go sys and text subrepositories.

https://golang.org/
https://github.com/golang/

Copyright (c) 2009 The Go Authors. All rights reserved.

Used under the terms of the 3-Clause BSD License (Google version). A templated
version of this license can be found online at
https://opensource.org/licenses/BSD-3-Clause.

--------------------------------------------------------------------------------

doublestar

https://github.com/bmatcuk/doublestar

Copyright (c) 2014 Bob Matcuk

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

errors

https://github.com/pkg/errors

Copyright (c) 2015, Dave Cheney <dave@cheney.net>
All rights reserved.

Used under the terms of the 2-Clause BSD License. A copy of this license can be
found online at https://opensource.org/licenses/BSD-2-Clause.

--------------------------------------------------------------------------------

Cobra

https://github.com/spf13/cobra

Copyright 2013 Steve Francia <spf@spf13.com>

Used under the terms of the Apache License, Version 2.0. A copy of this license
can be found online at http://www.apache.org/licenses/LICENSE-2.0.

--------------------------------------------------------------------------------

pflag

https://github.com/spf13/pflag

Copyright (c) 2012 Alex Ogier. All rights reserved.
Copyright (c) 2012 The Go Authors. All rights reserved.

Used under the terms of the 3-Clause BSD License (Google version).

--------------------------------------------------------------------------------

mousetrap

https://github.com/inconshreveable/mousetrap

Copyright 2014 Alan Shreve

Used under the terms of the Apache License, Version 2.0.

--------------------------------------------------------------------------------

humanize

https://github.com/dustin/go-humanize

Copyright (c) 2005-2008  Dustin Sallings <dustin@spy.net>

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

color

https://github.com/fatih/color

Copyright (c) 2013 Fatih Arslan

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

go-colorable

https://github.com/mattn/go-colorable

Copyright (c) 2016 Yasuhiro Matsumoto

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

go-runewidth

https://github.com/mattn/go-runewidth

Copyright (c) 2016 Yasuhiro Matsumoto

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

uax29

https://github.com/clipperhouse/uax29

Copyright (c) 2020 Matt Sherman

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

strftime

https://github.com/lestrrat-go/strftime

Copyright (c) 2016 lestrrat

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

go-isatty

https://github.com/mattn/go-isatty

Copyright (c) Yasuhiro MATSUMOTO <mattn.jp@gmail.com>

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

YAML support for the Go language (v2 and v3)

https://github.com/go-yaml/yaml

Copyright 2011-2019 Canonical Ltd.

Used under the terms of the Apache License, Version 2.0.
`
