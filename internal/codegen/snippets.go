package codegen

// Realm-construction snippet shapes. Each snippet is four-space indented
// to sit inside the create_realm function body and ends without a
// trailing newline; the emitter adds line separation.

const mockChildSnippet = `    let %[1]s = builder.add_local_child(
        "%[1]s",
        move |handles: LocalComponentHandles| Box::pin(%[2]s(handles)),
        ChildOptions::new()
    )
    .await?;`

const packagedChildSnippet = `    let %[1]s = builder.add_child(
        "%[1]s",
        %[2]s,
        ChildOptions::new()
    )
    .await?;`

const routeSnippet = `    builder
        .add_route(
            Route::new()
                .capability(%s)
                .from(%s)
%s,
        )
        .await?;`

// toClauseIndent aligns repeated to(...) clauses under the from clause.
const toClauseIndent = "                "
