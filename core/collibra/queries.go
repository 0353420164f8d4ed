package collibra

// Knowledge graph queries. Page sizes are part of the cursor contract: a cursor is
// the id of the last asset of the previous page, ascending.

const businessTermsQuery = `
query Assets {
    assets(
        limit: 50
        order: { id: asc }
        where: { type: { publicId: { eq: "BusinessTerm" } } }
    ) {
        id
        fullName
        displayName
        stringAttributes { stringValue }
    }
}`

const businessTermsAfterQuery = `
query Assets($lastSeenId: UUID!) {
    assets(
        limit: 50
        order: { id: asc }
        where: {
            type: { publicId: { eq: "BusinessTerm" } }
            id: { gt: $lastSeenId }
        }
    ) {
        id
        fullName
        displayName
        stringAttributes { stringValue }
    }
}`

const tablesQuery = `
query Assets {
    assets(
        limit: 10
        order: { id: asc }
        where: {
            type: { publicId: { eq: "Table" } }
            fullName: { startsWith: "AWS", notContains: ">pg_" }
            stringAttributes: { any: { type: { name: { eq: "AWS Resource Metadata" } } } }
        }
    ) {
        id
        fullName
        displayName
        stringAttributes(where: { type: { name: { eq: "AWS Resource Metadata" } } }) {
            stringValue
            type { name }
        }
    }
}`

const tablesAfterQuery = `
query Assets($lastSeenId: UUID!) {
    assets(
        limit: 10
        order: { id: asc }
        where: {
            type: { publicId: { eq: "Table" } }
            id: { gt: $lastSeenId }
            fullName: { startsWith: "AWS", notContains: ">pg_" }
            stringAttributes: { any: { type: { name: { eq: "AWS Resource Metadata" } } } }
        }
    ) {
        id
        fullName
        displayName
        stringAttributes(where: { type: { name: { eq: "AWS Resource Metadata" } } }) {
            stringValue
            type { name }
        }
    }
}`

const tableQuery = `
query Assets($assetId: UUID!) {
    assets(limit: 1, where: { type: { publicId: { eq: "Table" } }, id: { eq: $assetId } }) {
        id
        fullName
        displayName
        stringAttributes(where: { type: { publicId: { eq: "Description" } } }) {
            id
            stringValue
        }
        incomingRelations(limit: 1000, where: { source: { type: { publicId: { eq: "Column" } } } }) {
            source {
                id
                fullName
                displayName
                stringAttributes(where: { type: { publicId: { eq: "Description" } } }) {
                    id
                    stringValue
                }
                incomingRelations(limit: 10, where: { source: { type: { publicId: { eq: "BusinessTerm" } } } }) {
                    source { id fullName displayName }
                }
            }
        }
    }
}`

const tableBusinessTermsQuery = `
query Assets($assetId: UUID!) {
    assets(limit: 1, where: { type: { publicId: { eq: "Table" } }, id: { eq: $assetId } }) {
        id
        fullName
        displayName
        incomingRelations(limit: 1000, where: { source: { type: { publicId: { eq: "BusinessTerm" } } } }) {
            source { id fullName displayName }
        }
    }
}`

const piiColumnsQuery = `
query Assets($assetId: UUID!) {
    assets(limit: 1, where: { type: { publicId: { eq: "Table" } }, id: { eq: $assetId } }) {
        id
        incomingRelations(limit: 1000, where: { source: { type: { publicId: { eq: "Column" } } } }) {
            source {
                displayName
                incomingRelations(limit: 10) {
                    source {
                        incomingRelations(
                            limit: 1
                            where: {
                                source: {
                                    displayName: { eq: "Personal Identifiable Information" }
                                    type: { publicId: { eq: "DataCategory" } }
                                }
                            }
                        ) {
                            source { displayName type { publicId } }
                        }
                    }
                }
            }
        }
    }
}`

const businessTermHierarchyQuery = `
query Assets {
    assets(
        limit: 600
        where: {
            type: { publicId: { eq: "BusinessTerm" } }
            incomingRelations: { empty: false }
        }
    ) {
        displayName
        incomingRelations(limit: 40, where: { source: { type: { publicId: { eq: "BusinessTerm" } } } }) {
            source { displayName }
        }
    }
}`

const tableByNameQuery = `
query Assets($tableName: String!) {
    assets(
        limit: 1
        where: {
            type: { publicId: { eq: "Table" } }
            displayName: { eq: $tableName }
            fullName: { startsWith: "AWS" }
        }
    ) {
        id
        fullName
        displayName
    }
}`

const subscriptionRequestsByStatusQuery = `
query Assets($status: String!) {
    assets(
        limit: 100
        where: {
            displayName: { contains: "Subscription Request" }
            status: { name: { eq: $status } }
            outgoingRelations: { empty: false }
        }
        order: { modifiedOn: desc }
    ) {
        id
        displayName
        outgoingRelations(limit: 1, where: { target: { fullName: { startsWith: "AWS" } } }) {
            target {
                id
                fullName
                displayName
                stringAttributes(where: { type: { name: { eq: "AWS Resource Metadata" } } }) {
                    stringValue
                    type { name }
                }
            }
        }
        stringAttributes(where: { type: { name: { in: ["AWS Producer Project Id", "AWS Consumer Project Id"] } } }) {
            stringValue
            type { name }
        }
    }
}`

const assetByNameAndTypeQuery = `
query Assets($assetName: String!, $typeId: UUID!) {
    assets(limit: 1, where: { displayName: { eq: $assetName }, type: { id: { eq: $typeId } } }) {
        id
        fullName
        displayName
    }
}`

const assetWithAttributesByNameAndTypeQuery = `
query Assets($assetName: String!, $type: UUID!, $stringAttributeType: UUID!) {
    assets(limit: 1, where: { displayName: { eq: $assetName }, type: { id: { eq: $type } } }) {
        id
        fullName
        displayName
        stringAttributes(where: { type: { id: { eq: $stringAttributeType } } }) {
            id
            stringValue
        }
    }
}`
